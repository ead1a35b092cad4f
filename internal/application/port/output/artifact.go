package output

// ArtifactStorePort persists a task's raw output. Write overwrites any prior
// artifact at the same path and returns the path actually written.
type ArtifactStorePort interface {
	Write(path string, content string) (string, error)
}
