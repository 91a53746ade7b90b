package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Content reads are public; only /api/admin/* requires credentials
	return []string{
		"/api/designs", "/api/designs/featured", "/api/designs/:slug",
		"/api/categories", "/api/categories/:slug",
		"/api/interiors", "/api/interiors/:slug", "/api/interior-categories",
		"/api/portfolios", "/api/portfolios/:slug",
		"/api/search/designs",
	}
}
