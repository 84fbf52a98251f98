package constant

const (
	TokenTypeBearer = "Bearer"

	// GenericCredentialsMessage is returned for every credential-related
	// failure so callers cannot enumerate accounts. The precise reason is
	// kept in the audit record only.
	GenericCredentialsMessage = "invalid email or password"
)
