package resolvers

import (
	"context"
	"encoding/json"
	"errors"

	"glomnidesigns.GO/cms"
	gqlregistry "glomnidesigns.GO/graphql/registry"
	"glomnidesigns.GO/service/content"
)

// QueryResolver is the single resolver for all Query fields.
// Methods live in design.go, category.go, interior.go and portfolio.go.
// New Query fields: use RegisterSchemaExtension + add a method here,
// or use _extension for fully dynamic resolvers.
type QueryResolver struct {
	content     *content.Service
	assetOrigin string
}

func NewQueryResolver(svc *content.Service) *QueryResolver {
	return &QueryResolver{content: svc, assetOrigin: svc.Client().AssetOrigin()}
}

// unwrap turns an envelope into graphql-go's (value, error) pair. A missing
// record resolves to null rather than an error.
func unwrap[T any](res cms.Result[T]) (T, bool, error) {
	if res.Success {
		return res.Data, true, nil
	}
	if res.IsNotFound() {
		var zero T
		return zero, false, nil
	}
	return res.Data, false, errors.New(res.Error)
}

// Extension dispatches to registered custom resolvers.
func (r *QueryResolver) Extension(ctx context.Context, args struct {
	Name string
	Args *string
}) (*string, error) {
	m := make(map[string]interface{})
	if args.Args != nil && *args.Args != "" {
		if err := json.Unmarshal([]byte(*args.Args), &m); err != nil {
			return nil, err
		}
	}
	out, err := gqlregistry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
