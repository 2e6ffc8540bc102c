package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/phrazzld/itinerary-api/internal/store"
)

// BasePath is the root every resource route and link is mounted under.
const BasePath = "/api"

// Links maps relation names to URLs.
type Links map[string]string

// Meta carries the pagination state of a list response.
type Meta struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}

// ListEnvelope wraps one page of a collection.
type ListEnvelope struct {
	Data  any   `json:"data"`
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`
}

// ResourceEnvelope wraps a single resource.
type ResourceEnvelope struct {
	Data  any   `json:"data"`
	Links Links `json:"links"`
}

// resourcePath returns the path of collection, or of one member when id is
// given.
func resourcePath(collection string, id ...int64) string {
	if len(id) == 0 {
		return BasePath + "/" + collection
	}
	return fmt.Sprintf("%s/%s/%d", BasePath, collection, id[0])
}

// newListEnvelope builds the envelope of a page of data. The self, next and
// prev links keep the caller's query parameters and rewrite only page and
// per_page. next is present iff items remain past this page, prev iff this is
// not the first page.
func newListEnvelope(r *http.Request, data any, page store.Page, total int) ListEnvelope {
	path := strings.TrimSuffix(r.URL.Path, "/")
	if path == "" {
		path = "/"
	}

	link := func(number int) string {
		q := r.URL.Query()
		q.Set("page", strconv.Itoa(number))
		q.Set("per_page", strconv.Itoa(page.Size))
		return path + "?" + q.Encode()
	}

	links := Links{"self": link(page.Number)}
	if page.HasNext(total) {
		links["next"] = link(page.Number + 1)
	}
	if page.Number > 1 {
		links["prev"] = link(page.Number - 1)
	}

	return ListEnvelope{
		Data:  data,
		Meta:  Meta{Page: page.Number, PerPage: page.Size, Total: total},
		Links: links,
	}
}

// newResourceEnvelope wraps data with its self and collection links plus the
// given relations.
func newResourceEnvelope(data any, collection string, id int64, relations Links) ResourceEnvelope {
	links := Links{
		"self":       resourcePath(collection, id),
		"collection": resourcePath(collection),
	}
	for name, href := range relations {
		links[name] = href
	}
	return ResourceEnvelope{Data: data, Links: links}
}
