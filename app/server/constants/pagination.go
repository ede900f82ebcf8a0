package constants

const (
	PageDefaultLimit = 100
	PageMaxLimit     = 500
)
