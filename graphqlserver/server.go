// Package graphqlserver builds the executable GraphQL schema over the
// content service.
package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"glomnidesigns.GO/graphql"
	"glomnidesigns.GO/graphql/resolvers"
	"glomnidesigns.GO/service/content"
)

const (
	// MaxDepth bounds query nesting.
	MaxDepth = 8
	// MaxParallelism bounds resolvers running at once; each may call the CMS.
	MaxParallelism = 4
)

// NewSchema parses base schema + extensions with the content-backed Query resolver as root.
func NewSchema(svc *content.Service) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), resolvers.NewQueryResolver(svc),
		gql.UseFieldResolvers(),
		gql.MaxDepth(MaxDepth),
		gql.MaxParallelism(MaxParallelism),
	)
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
