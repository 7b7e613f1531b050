// Package admin holds the Woo MasterKit admin menu and renders its pages.
package admin

const (
	SlugTop             = "woo-masterkit"
	SlugHome            = "woo-masterkit"
	SlugBulkChangePrice = "woo-masterkit-bulk-change-price"
	SlugGoPro           = "woo-masterkit-go-pro"
	SlugSettings        = "woo-masterkit-settings"
)

const (
	PagePrefix = "/admin/page/"
	SearchPath = "/admin/ajax/search-products"
)

type Page struct {
	Slug       string
	PageTitle  string
	MenuTitle  string
	Capability string
	// Parent is empty for the top level entry.
	Parent   string
	Icon     string
	Position int
	template string
}

func (p *Page) URL() string {
	return PagePrefix + p.Slug
}

// Menu is the top level entry followed by its submenu pages, in display order.
var Menu = []*Page{
	{
		Slug:       SlugTop,
		PageTitle:  "Woo MasterKit",
		MenuTitle:  "Woo MasterKit",
		Capability: "manage_options",
		Icon:       "dashicons-admin-tools",
		Position:   6,
		template:   "home",
	},
	{
		Slug:       SlugHome,
		PageTitle:  "Home",
		MenuTitle:  "Home",
		Capability: "manage_options",
		Parent:     SlugTop,
		template:   "home",
	},
	{
		Slug:       SlugBulkChangePrice,
		PageTitle:  "Bulk Change Price",
		MenuTitle:  "Bulk Change Price",
		Capability: "manage_options",
		Parent:     SlugTop,
		template:   "bulk",
	},
	{
		Slug:       SlugGoPro,
		PageTitle:  "Go Pro",
		MenuTitle:  "Go Pro",
		Capability: "manage_options",
		Parent:     SlugTop,
		template:   "gopro",
	},
	{
		Slug:       SlugSettings,
		PageTitle:  "Settings",
		MenuTitle:  "Settings",
		Capability: "manage_options",
		Parent:     SlugTop,
		template:   "settings",
	},
}

// Submenu returns the pages registered under parent.
func Submenu(parent string) []*Page {
	var pages []*Page
	for _, p := range Menu {
		if p.Parent == parent {
			pages = append(pages, p)
		}
	}
	return pages
}

// Find returns the page that renders slug. The Home submenu shares the top
// level slug, the submenu entry wins.
func Find(slug string) *Page {
	var found *Page
	for _, p := range Menu {
		if p.Slug == slug {
			found = p
			if p.Parent != "" {
				return p
			}
		}
	}
	return found
}

// View names the body template of the page.
func (p *Page) View() string {
	return p.template
}
