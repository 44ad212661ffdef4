// Package navigation holds the per page header state: title, active menu
// entry and breadcrumbs.
package navigation

// Menu sections.
const (
	SectionHome    = "home"
	SectionRequest = "request"
	SectionAdmin   = "admin"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	SiteTitle     string
	PageTitle     string
	ActiveSection string
	Breadcrumbs   []BreadcrumbItem
}

// NewContext creates a navigation context. An empty siteTitle falls back to
// the page title.
func NewContext(siteTitle, pageTitle, activeSection string) *Context {
	if siteTitle == "" {
		siteTitle = pageTitle
	}

	return &Context{
		SiteTitle:     siteTitle,
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsSectionActive checks if the given menu section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}

// DocumentTitle is the text of the <title> element.
func (c *Context) DocumentTitle() string {
	if c.PageTitle == "" || c.PageTitle == c.SiteTitle {
		return c.SiteTitle
	}

	return c.PageTitle + " | " + c.SiteTitle
}
