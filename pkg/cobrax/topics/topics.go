// Package topics adds file-backed help topics to a Cobra command tree.
// Topics are read from an fs.FS, so they can be embedded in the binary.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// optionPrefix marks topics that document a flag
const optionPrefix = "option-"

// Topic is a help topic
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Options configures a Manager
type Options struct {
	// Extensions lists the file extensions read as topics.
	// Defaults to .txt and .md.
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// Manager holds the topics of an application
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Load reads every topic file from fsys
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !m.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Ext: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Get retrieves a topic by name. Flag-style names (--format) also match
// option topics (option-format).
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")

	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics[optionPrefix+name]
	return topic, ok
}

// List returns the topic names in sorted order
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes the rendered topic to w
func (m *Manager) Render(w io.Writer, topic *Topic) {
	fmt.Fprint(w, m.renderer.Render(topic.Content, topic.Ext))
}

// PrintIndex writes the topic listing to w
func (m *Manager) PrintIndex(w io.Writer, program string) {
	names := m.List()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
}

// Install replaces the help command and help function of rootCmd so that
// they also serve topics
func (m *Manager) Install(rootCmd *cobra.Command) {
	originalHelp := rootCmd.HelpFunc()
	program := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + program + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + program + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.List()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				originalHelp(rootCmd, []string{})
				return
			}
			if args[0] == "topics" {
				m.PrintIndex(cmd.OutOrStdout(), program)
				return
			}
			if topic, ok := m.Get(args[0]); ok {
				m.Render(cmd.OutOrStdout(), topic)
				return
			}
			if target, _, err := rootCmd.Find(args); err == nil && target != nil {
				originalHelp(target, args)
				return
			}
			originalHelp(rootCmd, args)
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := m.Get(args[0]); ok {
				m.Render(cmd.OutOrStdout(), topic)
				return
			}
		}
		originalHelp(cmd, args)
	})
}
