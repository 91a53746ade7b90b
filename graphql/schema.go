package graphql

import (
	"strings"
	"sync"
)

const schemaBase = `
schema {
	query: Query
}

type Image {
	url: String!
	alt: String!
	width: Int
	height: Int
}

type CategorySummary {
	id: ID!
	name: String!
	slug: String!
}

type Design {
	id: ID!
	slug: String!
	name: String!
	description: String
	tags: [String!]!
	style: String
	location: String
	priceRange: String
	areaSize: Float
	completionTime: String
	isFeatured: Boolean!
	imageUrl: String
	imageAlt: String
	images: [Image!]!
	categories: [CategorySummary!]!
}

type DesignPage {
	items: [Design!]!
	currentPage: Int!
	pageSize: Int!
	totalItems: Int!
	totalPages: Int!
	hasPrev: Boolean!
	hasNext: Boolean!
}

type Category {
	id: ID!
	slug: String!
	name: String!
	description: String
	type: String
	imageUrl: String
}

type CategoryDetail {
	category: Category!
	designs: [Design!]!
}

type ServiceCategory {
	id: ID!
	slug: String!
	name: String!
	icon: String
	color: String
}

type Interior {
	id: ID!
	slug: String!
	title: String!
	shortDescription: String
	fullDescription: String
	imageUrl: String
	startingPrice: Float
	priceRange: String
	duration: String
	features: [String!]!
	isFeatured: Boolean!
	isPopular: Boolean!
	serviceCategory: ServiceCategory
}

type InteriorCategory {
	id: ID!
	slug: String!
	name: String!
	description: String
	icon: String
	color: String
}

type Portfolio {
	id: ID!
	slug: String!
	name: String!
	location: String
	area: String
	imageUrl: String
	images: [Image!]!
}

type Query {
	designs(search: String, category: String, page: Int = 1): DesignPage!
	design(slug: String!): Design
	featuredDesigns: [Design!]!
	searchDesigns(query: String!, size: Int = 10): [Design!]!
	categories(search: String, type: String): [Category!]!
	category(slug: String!, search: String): CategoryDetail
	interiors(search: String, category: String, featuredOnly: Boolean = false): [Interior!]!
	interior(slug: String!): Interior
	interiorCategories: [InteriorCategory!]!
	portfolios(search: String): [Portfolio!]!
	portfolio(slug: String!): Portfolio
	_extension(name: String!, args: String): String
}
`

var (
	schemaExtensions []string
	schemaMu         sync.Mutex
)

// RegisterSchemaExtension appends schema to the base. Call from init() in custom packages.
func RegisterSchemaExtension(schema string) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	schemaExtensions = append(schemaExtensions, strings.TrimSpace(schema))
}

// Schema returns base schema + registered extensions.
func Schema() string {
	schemaMu.Lock()
	ext := schemaExtensions
	schemaMu.Unlock()
	if len(ext) == 0 {
		return schemaBase
	}
	return schemaBase + "\n\n" + strings.Join(ext, "\n\n")
}
