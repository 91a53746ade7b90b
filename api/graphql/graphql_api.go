package graphql

import (
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"glomnidesigns.GO/api"
	"glomnidesigns.GO/app"
	_ "glomnidesigns.GO/custom"
	"glomnidesigns.GO/graphqlserver"
)

func init() {
	api.RegisterRoute(RegisterGraphQLRoutes)
}

// RegisterGraphQLRoutes mounts /graphql and /playground. Both are outside
// the /api group and need no credentials.
func RegisterGraphQLRoutes(e *echo.Echo, a *app.App) {
	if a == nil {
		return
	}
	schema, err := graphqlserver.NewSchema(a.Content)
	if err != nil {
		panic("graphql schema: " + err.Error())
	}
	RegisterGraphQLRoutesWithSchema(e, schema)
}

// RegisterGraphQLRoutesWithSchema registers /graphql with a prebuilt schema.
func RegisterGraphQLRoutesWithSchema(e *echo.Echo, schema *graphql.Schema) {
	h := echo.WrapHandler(graphqlserver.Handler(schema))
	e.POST("/graphql", h)
	e.GET("/graphql", h)
	e.GET("/playground", echo.WrapHandler(playgroundHandler()))
}

func playgroundHandler() http.Handler {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>Glomni Designs GraphQL</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css"/>
</head>
<body>
	<div id="root"/>
	<script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
	<script>window.addEventListener('load', function() {
		GraphQLPlayground.init(document.getElementById('root'), { endpoint: '/graphql' });
	})</script>
</body>
</html>`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	})
}
