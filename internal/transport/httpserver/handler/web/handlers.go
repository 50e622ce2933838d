package web

import (
	"embed"
	"html/template"

	persondomain "grievance-portal-go/internal/domain/person"
	userdomain "grievance-portal-go/internal/domain/user"
	"grievance-portal-go/internal/transport/httpserver/middleware"
	"grievance-portal-go/pkg/logger"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pageNames = []string{"login", "dashboard", "share", "not_found"}

type Handlers struct {
	Users   *userdomain.Service
	Persons *persondomain.Service
	Auth    *middleware.Auth
	baseURL string
	pages   map[string]*template.Template
	log     logger.Logger
}

func New(users *userdomain.Service, persons *persondomain.Service, auth *middleware.Auth, baseURL string, log logger.Logger) (*Handlers, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Handlers{
		Users:   users,
		Persons: persons,
		Auth:    auth,
		baseURL: baseURL,
		pages:   pages,
		log:     log,
	}, nil
}

func parsePages() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"emojiLabel": emojiLabel,
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFiles, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}
	return pages, nil
}
