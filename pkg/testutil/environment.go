package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/actionkit/pkg/config"
	"github.com/arthur-debert/actionkit/pkg/core"
	"github.com/spf13/afero"
)

// TestEnvironment holds the filesystem and configuration an App is built
// from
type TestEnvironment struct {
	t      *testing.T
	FS     afero.Fs
	Config *config.Config
}

// FileTree represents a directory structure for testing. Values are file
// contents (string) or nested directories (FileTree).
type FileTree map[string]interface{}

// NewTestEnvironment creates an environment backed by an in-memory
// filesystem and the default configuration
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	return &TestEnvironment{
		t:      t,
		FS:     afero.NewMemMapFs(),
		Config: config.Default(),
	}
}

// WithFileTree creates tree under root
func (env *TestEnvironment) WithFileTree(root string, tree FileTree) *TestEnvironment {
	env.t.Helper()
	createFileTree(env.t, env.FS, root, tree)
	return env
}

// WithConfig applies fn to the environment configuration
func (env *TestEnvironment) WithConfig(fn func(cfg *config.Config)) *TestEnvironment {
	fn(env.Config)
	return env
}

// App assembles an App from the environment, failing the test on error
func (env *TestEnvironment) App() *core.App {
	env.t.Helper()
	app, err := core.NewApp(env.Config, env.FS)
	if err != nil {
		env.t.Fatalf("Failed to assemble app: %v", err)
	}
	return app
}

// createFileTree recursively creates a file tree
func createFileTree(t *testing.T, fs afero.Fs, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := afero.WriteFile(fs, fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
