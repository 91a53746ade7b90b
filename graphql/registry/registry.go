// Package registry holds the resolvers served through the _extension query
// field. Custom packages register from init(); the set is sealed on the
// first Resolve.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"glomnidesigns.GO/core/registry"
)

// ResolverFunc handles _extension(name, args). args is the JSON-decoded args string.
type ResolverFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// ErrUnknownExtension is returned by Resolve for a name nobody registered.
var ErrUnknownExtension = errors.New("unknown extension")

var (
	mu     sync.Mutex
	sealed atomic.Bool
)

func entries() map[string]ResolverFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryGraphQL); ok && v != nil {
		return v.(map[string]ResolverFunc)
	}
	return nil
}

// store replaces the map instead of mutating it, so Resolve can read
// without taking mu.
func store(fn func(m map[string]ResolverFunc)) {
	cur := entries()
	next := make(map[string]ResolverFunc, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	fn(next)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, next)
}

// Register adds a resolver. Panics on an empty or duplicate name, or once sealed.
func Register(name string, resolve ResolverFunc) {
	mu.Lock()
	defer mu.Unlock()
	if name == "" || resolve == nil {
		panic("graphql/registry: name and resolver are required")
	}
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryGraphQL) {
		panic("graphql/registry: locked (register only during init before first request)")
	}
	if _, ok := entries()[name]; ok {
		panic("graphql/registry: duplicate " + name)
	}
	store(func(m map[string]ResolverFunc) { m[name] = resolve })
}

// Unregister removes a registration and unseals the registry. Tests only.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryGraphQL)
	sealed.Store(false)
	store(func(m map[string]ResolverFunc) { delete(m, name) })
}

// Resolve calls the resolver registered under name. Resolver errors are
// prefixed with the extension name.
func Resolve(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	if sealed.CompareAndSwap(false, true) {
		registry.GlobalRegistry.Lock(registry.KeyRegistryGraphQL)
	}
	resolve, ok := entries()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExtension, name)
	}
	out, err := resolve(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// Names returns all registered names, sorted.
func Names() []string {
	m := entries()
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// StringArg returns args[name] when it is a non-empty string.
func StringArg(args map[string]interface{}, name, def string) string {
	if s, ok := args[name].(string); ok && s != "" {
		return s
	}
	return def
}

// IntArg accepts JSON numbers and numeric strings.
func IntArg(args map[string]interface{}, name string, def int) int {
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
