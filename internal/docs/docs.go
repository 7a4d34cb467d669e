// Package docs describes the running API as an OpenAPI 3 document built from
// the routes registered on the Fiber app.
package docs

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/yaml.v3"
)

const (
	JSONPath = "/api-docs"
	YAMLPath = "/api-docs.yaml"

	apiPrefix = "/api/v1/"
)

type Document struct {
	OpenAPI    string              `json:"openapi" yaml:"openapi"`
	Info       Info                `json:"info" yaml:"info"`
	Servers    []Server            `json:"servers,omitempty" yaml:"servers,omitempty"`
	Tags       []Tag               `json:"tags,omitempty" yaml:"tags,omitempty"`
	Paths      map[string]PathItem `json:"paths" yaml:"paths"`
	Components Components          `json:"components" yaml:"components"`
}

type Info struct {
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Version     string  `json:"version" yaml:"version"`
	Contact     Contact `json:"contact" yaml:"contact"`
	License     License `json:"license" yaml:"license"`
}

type Contact struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type Server struct {
	URL string `json:"url" yaml:"url"`
}

type Tag struct {
	Name string `json:"name" yaml:"name"`
}

// PathItem maps a lower-case HTTP method to its operation.
type PathItem map[string]Operation

type Operation struct {
	Tags        []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string                `json:"summary" yaml:"summary"`
	OperationID string                `json:"operationId" yaml:"operationId"`
	Parameters  []Parameter           `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Security    []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`
	Responses   map[string]Response   `json:"responses" yaml:"responses"`
}

type Parameter struct {
	Name     string `json:"name" yaml:"name"`
	In       string `json:"in" yaml:"in"`
	Required bool   `json:"required" yaml:"required"`
	Schema   Schema `json:"schema" yaml:"schema"`
}

type Schema struct {
	Type string `json:"type" yaml:"type"`
}

type Response struct {
	Description string `json:"description" yaml:"description"`
}

type Components struct {
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes" yaml:"securitySchemes"`
}

type SecurityScheme struct {
	Type         string `json:"type" yaml:"type"`
	Scheme       string `json:"scheme" yaml:"scheme"`
	BearerFormat string `json:"bearerFormat" yaml:"bearerFormat"`
}

// DefaultInfo is the static part of the shop's API description.
func DefaultInfo() Info {
	return Info{
		Title:       "Ocean Butterfly Shop API",
		Description: "REST API for managing the shop's brands, products, images, users and orders.",
		Version:     "1.0.0",
		Contact: Contact{
			Name:  "Ocean Butterfly Shop Team",
			Email: "support@oceanbutterflyshop.com",
		},
		License: License{
			Name: "Apache 2.0",
			URL:  "https://www.apache.org/licenses/LICENSE-2.0",
		},
	}
}

// Build describes routes. A route with more than one handler sits behind an
// auth guard and is marked as requiring a bearer token.
func Build(info Info, routes []fiber.Route) *Document {
	doc := &Document{
		OpenAPI: "3.0.3",
		Info:    info,
		Servers: []Server{{URL: "/"}},
		Paths:   make(map[string]PathItem),
		Components: Components{SecuritySchemes: map[string]SecurityScheme{
			"bearerAuth": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
		}},
	}

	tags := make(map[string]struct{})
	for _, route := range routes {
		if route.Method == fiber.MethodHead || route.Method == fiber.MethodOptions || isDocsPath(route.Path) {
			continue
		}
		path := openAPIPath(route.Path)
		tag := tagFor(path)
		tags[tag] = struct{}{}

		op := Operation{
			Tags:        []string{tag},
			Summary:     route.Method + " " + path,
			OperationID: operationID(route.Method, path),
			Responses:   responsesFor(route.Method),
		}
		for _, name := range route.Params {
			op.Parameters = append(op.Parameters, Parameter{
				Name:     name,
				In:       "path",
				Required: true,
				Schema:   Schema{Type: paramType(name)},
			})
		}
		if len(route.Handlers) > 1 {
			op.Security = []map[string][]string{{"bearerAuth": {}}}
		}

		item, ok := doc.Paths[path]
		if !ok {
			item = make(PathItem)
			doc.Paths[path] = item
		}
		item[strings.ToLower(route.Method)] = op
	}

	for name := range tags {
		doc.Tags = append(doc.Tags, Tag{Name: name})
	}
	sort.Slice(doc.Tags, func(i, j int) bool { return doc.Tags[i].Name < doc.Tags[j].Name })
	return doc
}

// Register serves the document as JSON and YAML. It is built per request so
// routes registered after this call are included.
func Register(app *fiber.App, info Info) {
	app.Get(JSONPath, func(c *fiber.Ctx) error {
		return c.JSON(Build(info, c.App().GetRoutes(true)))
	})
	app.Get(YAMLPath, func(c *fiber.Ctx) error {
		out, err := yaml.Marshal(Build(info, c.App().GetRoutes(true)))
		if err != nil {
			return fmt.Errorf("failed to render API docs: %w", err)
		}
		c.Set(fiber.HeaderContentType, "application/yaml")
		return c.Send(out)
	})
}

func isDocsPath(path string) bool {
	return path == JSONPath || path == YAMLPath
}

// openAPIPath rewrites /orders/:id/status as /orders/{id}/status.
func openAPIPath(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + strings.TrimSuffix(strings.TrimPrefix(seg, ":"), "?") + "}"
		}
	}
	return strings.Join(segments, "/")
}

func tagFor(path string) string {
	if !strings.HasPrefix(path, apiPrefix) {
		return "system"
	}
	rest := strings.TrimPrefix(path, apiPrefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

func operationID(method, path string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(method))
	for _, seg := range strings.Split(path, "/") {
		seg = strings.Trim(seg, "{}")
		for _, part := range strings.FieldsFunc(seg, func(r rune) bool { return r == '-' || r == '.' }) {
			b.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return b.String()
}

func paramType(name string) string {
	if name == "id" || strings.HasSuffix(name, "Id") {
		return "integer"
	}
	return "string"
}

func responsesFor(method string) map[string]Response {
	status := http.StatusOK
	if method == fiber.MethodPost {
		status = http.StatusCreated
	}
	return map[string]Response{
		strconv.Itoa(status): {Description: http.StatusText(status)},
		"400":                {Description: "Bad request or validation failure"},
		"404":                {Description: "Resource not found"},
		"500":                {Description: "An unexpected error occurred"},
	}
}
