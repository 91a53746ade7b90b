package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"glomnidesigns.GO/core/registry"
)

func registered() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

// Register adds a command from a custom package. Call from init().
// Panics once Apply has run or when the name clashes with a built-in or
// previously registered command.
func Register(c *cobra.Command) {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	name := c.Name()
	if existing, _, err := rootCmd.Find([]string{name}); err == nil && existing != rootCmd {
		panic("cmd/registry: " + name + " is a built-in command")
	}
	list := registered()
	for _, r := range list {
		if r.Name() == name {
			panic("cmd/registry: duplicate command " + name)
		}
	}
	list = append(append([]*cobra.Command(nil), list...), c)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, list)
}

// Apply attaches registered commands to root in name order and locks the registry.
func Apply() {
	list := append([]*cobra.Command(nil), registered()...)
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	for _, c := range list {
		if c.Parent() == nil {
			rootCmd.AddCommand(c)
		}
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
