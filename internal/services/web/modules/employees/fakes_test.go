package employees

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/services/web/platform/modulehandler"
	"golang.org/x/net/html"
)

// fakeGateway is an in-memory users service safe for concurrent handlers.
type fakeGateway struct {
	mu        sync.Mutex
	records   []directory.Record
	listCalls int
	listErr   error
	createErr error
	deleteErr error
	created   []directory.Record
	deleted   []string
}

var _ directory.Gateway = (*fakeGateway)(nil)

func newFakeGateway(records ...directory.Record) *fakeGateway {
	return &fakeGateway{records: records}
}

func (f *fakeGateway) ListRecords(context.Context) ([]directory.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return slices.Clone(f.records), nil
}

func (f *fakeGateway) CreateRecord(_ context.Context, record directory.Record) (directory.CreateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return directory.CreateResult{}, f.createErr
	}
	f.records = append(f.records, record)
	f.created = append(f.created, record)
	return directory.CreateResult{Record: &record}, nil
}

func (f *fakeGateway) DeleteRecord(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	f.records = slices.DeleteFunc(f.records, func(r directory.Record) bool { return r.ID == id })
	return nil
}

func (f *fakeGateway) calls() (list int, created []directory.Record, deleted []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, slices.Clone(f.created), slices.Clone(f.deleted)
}

func (f *fakeGateway) setErrors(list, create, del error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr, f.createErr, f.deleteErr = list, create, del
}

func sampleRecords() []directory.Record {
	return []directory.Record{
		{ID: "1", FullName: "Ann Lee", Email: "ann.lee@example.com", Address: "1 Elm St", PhoneNumber: "555-0101"},
		{ID: "2", FullName: "Ann Kim", Email: "ann.kim@example.com", Address: "2 Oak St", PhoneNumber: "555-0102"},
		{ID: "3", FullName: "Bob Lee", Email: "bob@example.com", Address: "3 Pine St", PhoneNumber: "555-0103"},
		{ID: "4", FullName: "Cara Diaz", Email: "cara@example.com"},
		{ID: "5", FullName: "Dan Roe", Email: "dan@example.com"},
		{ID: "6", FullName: "Eve Poe", Email: "eve@example.com"},
		{ID: "7", FullName: "Finn Ash", Email: "finn@example.com"},
	}
}

func sequenceIDs(prefix string) func() (string, error) {
	var mu sync.Mutex
	n := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s%d", prefix, n), nil
	}
}

func testConfig() Config {
	return Config{
		Session:      directory.Options{NewID: sequenceIDs("new-")},
		NewSessionID: sequenceIDs("ws-"),
	}
}

// newTestServer mounts the module behind a real listener and returns a
// browser-like client that keeps cookies and follows redirects.
func newTestServer(t *testing.T, m Module) (*httptest.Server, *http.Client) {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	srv := httptest.NewServer(mount.Handler)
	t.Cleanup(srv.Close)
	return srv, newBrowser(t)
}

func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New() error = %v", err)
	}
	return &http.Client{Jar: jar}
}

type page struct {
	status int
	doc    *html.Node
	body   string
}

func fetch(t *testing.T, c *http.Client, req *http.Request) page {
	t.Helper()
	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("%s %s error = %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()
	var b strings.Builder
	doc, err := html.Parse(teeReader{resp: resp, b: &b})
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return page{status: resp.StatusCode, doc: doc, body: b.String()}
}

type teeReader struct {
	resp *http.Response
	b    *strings.Builder
}

func (r teeReader) Read(p []byte) (int, error) {
	n, err := r.resp.Body.Read(p)
	r.b.Write(p[:n])
	return n, err
}

func get(t *testing.T, c *http.Client, target string) page {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	return fetch(t, c, req)
}

func post(t *testing.T, c *http.Client, target string, form url.Values) page {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return fetch(t, c, req)
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	if n.Type == html.ElementNode && match(n) {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findAll(c, match)...)
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// rowIDs returns the data-employee-id of each rendered table row in order.
func (p page) rowIDs() []string {
	rows := findAll(p.doc, func(n *html.Node) bool { return n.Data == "tr" && attr(n, "data-employee-id") != "" })
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, attr(row, "data-employee-id"))
	}
	return ids
}

// formValues returns the record dialog inputs by name, or nil when closed.
func (p page) formValues() map[string]string {
	dialog := findByID(p.doc, "employee-form")
	if dialog == nil {
		return nil
	}
	values := map[string]string{}
	for _, input := range findAll(dialog, func(n *html.Node) bool { return n.Data == "input" }) {
		values[attr(input, "name")] = attr(input, "value")
	}
	return values
}

func (p page) formAction() string {
	dialog := findByID(p.doc, "employee-form")
	forms := findAll(dialog, func(n *html.Node) bool { return n.Data == "form" })
	if len(forms) == 0 {
		return ""
	}
	return attr(forms[0], "action")
}

func (p page) errorBanner() string {
	return textContent(findByID(p.doc, "employees-error"))
}

func (p page) toast() string {
	return textContent(findByID(p.doc, "app-toast"))
}

func newTestModule(gw directory.Gateway) Module {
	return NewWithGateway(gw, testConfig(), modulehandler.NewTestBase())
}
