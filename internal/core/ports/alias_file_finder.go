package ports

// AliasFileFinder resolves the path of the alias file.
// Implementations re-evaluate the environment on every call.
type AliasFileFinder interface {
	Find() (string, error)
}
