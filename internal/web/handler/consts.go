package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPrefix is the alternative mount point of the JSON surfaces.
	APIPrefix = "/api"
)
