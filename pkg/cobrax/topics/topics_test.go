package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"kinds.md":          {Data: []byte("# Kinds\n\nAPI, SAAS, DB")},
		"naming.txt":        {Data: []byte("Names are unique per page")},
		"option-format.txt": {Data: []byte("auto, term, text or json")},
		"nested/routes.md":  {Data: []byte("# Routes")},
		"config.txxt":       {Data: []byte("Configuration Guide")},
		"ignored.json":      {Data: []byte("{}")},
	}
}

func TestLoad(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m, err := Load(testFS(), Options{})
		require.NoError(t, err)

		assert.Equal(t, []string{"kinds", "naming", "option-format", "routes"}, m.List())

		topic, ok := m.Get("naming")
		require.True(t, ok)
		assert.Equal(t, "Names are unique per page", topic.Content)
		assert.Equal(t, ".txt", topic.Ext)
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := Load(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"config"}, m.List())
	})
}

func TestGet_OptionTopics(t *testing.T) {
	m, err := Load(testFS(), Options{})
	require.NoError(t, err)

	for _, name := range []string{"--format", "-format", "format", "option-format"} {
		t.Run(name, func(t *testing.T) {
			topic, ok := m.Get(name)
			require.True(t, ok)
			assert.Equal(t, "option-format", topic.Name)
		})
	}

	_, ok := m.Get("missing")
	assert.False(t, ok)
}

func TestPrintIndex(t *testing.T) {
	m, err := Load(testFS(), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	m.PrintIndex(&buf, "actionkit")
	out := buf.String()

	assert.Contains(t, out, "General topics:")
	assert.Contains(t, out, "  kinds\n")
	assert.Contains(t, out, "Option topics:")
	assert.Contains(t, out, "  --format\n")
	assert.Contains(t, out, "Use 'actionkit help <topic>'")

	empty, err := Load(fstest.MapFS{}, Options{})
	require.NoError(t, err)
	buf.Reset()
	empty.PrintIndex(&buf, "actionkit")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func TestInstall(t *testing.T) {
	m, err := Load(testFS(), Options{})
	require.NoError(t, err)

	newRoot := func() (*cobra.Command, *bytes.Buffer) {
		root := &cobra.Command{Use: "actionkit", Run: func(*cobra.Command, []string) {}}
		root.AddCommand(&cobra.Command{Use: "kinds", Short: "List kinds", Run: func(*cobra.Command, []string) {}})
		m.Install(root)
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		return root, &buf
	}

	t.Run("topic", func(t *testing.T) {
		root, buf := newRoot()
		root.SetArgs([]string{"help", "naming"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Names are unique per page", buf.String())
	})

	t.Run("topic index", func(t *testing.T) {
		root, buf := newRoot()
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Available help topics:")
	})

	t.Run("command help", func(t *testing.T) {
		root, buf := newRoot()
		root.SetArgs([]string{"help", "kinds"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "List kinds")
	})
}

func TestGlamourRenderer_PassesThroughNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
