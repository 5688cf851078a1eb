// Package wptest provides an in-memory WordPress REST server for tests.
//
// It serves /wp-json/wp/v2/categories and /wp-json/wp/v2/posts with HTTP
// Basic Auth, records every request, and lets tests inject failures.
package wptest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"article-uploader/pkg/response"
	"article-uploader/pkg/wordpress"
)

const (
	PostsPath      = "/wp-json/wp/v2/posts"
	CategoriesPath = "/wp-json/wp/v2/categories"
)

// Call is one request received by the server.
type Call struct {
	Method string
	Path   string
	Query  string
}

// StoredPost is a post accepted by the server.
type StoredPost struct {
	ID      int
	Request wordpress.CreatePostRequest
}

// Server is a fake WordPress site.
type Server struct {
	*httptest.Server

	// FailSearch makes category searches answer with the given status when non-zero.
	FailSearch int
	// FailCategoryCreate makes category creation fail for names it returns true for.
	FailCategoryCreate func(name string) bool
	// FailPostCreate makes post creation fail for titles it returns true for.
	FailPostCreate func(title string) bool

	username string
	password string

	mu         sync.Mutex
	nextID     int
	categories []wordpress.Category
	posts      []StoredPost
	calls      []Call
}

// New starts a server accepting the given Basic Auth credentials.
func New(username, password string) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		username: username,
		password: password,
		nextID:   1,
	}

	r := gin.New()
	r.Use(s.record, s.auth)
	r.GET(CategoriesPath, s.searchCategories)
	r.POST(CategoriesPath, s.createCategory)
	r.POST(PostsPath, s.createPost)

	s.Server = httptest.NewServer(r)
	return s
}

// PostsURL is the posts endpoint to configure the uploader with.
func (s *Server) PostsURL() string {
	return s.URL + PostsPath
}

// AddCategory seeds an existing category and returns its ID.
func (s *Server) AddCategory(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addCategoryLocked(name).ID
}

// Categories returns a snapshot of all categories.
func (s *Server) Categories() []wordpress.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]wordpress.Category(nil), s.categories...)
}

// Posts returns a snapshot of all created posts.
func (s *Server) Posts() []StoredPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StoredPost(nil), s.posts...)
}

// Calls returns a snapshot of every request received.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CountCalls counts received requests matching method and path.
func (s *Server) CountCalls(method, path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Query:  c.Request.URL.RawQuery,
	})
	s.mu.Unlock()
	c.Next()
}

func (s *Server) auth(c *gin.Context) {
	user, pass, ok := c.Request.BasicAuth()
	if !ok || user != s.username || pass != s.password {
		response.Unauthorized(c)
		c.Abort()
		return
	}
	c.Next()
}

// searchCategories matches like WordPress does: case-insensitive substring
// on the name, in creation order.
func (s *Server) searchCategories(c *gin.Context) {
	if s.FailSearch != 0 {
		response.Error(c, s.FailSearch, response.CodeInternalError, "search unavailable")
		return
	}

	term := strings.ToLower(c.Query("search"))

	s.mu.Lock()
	found := make([]wordpress.Category, 0)
	for _, cat := range s.categories {
		if strings.Contains(strings.ToLower(cat.Name), term) {
			found = append(found, cat)
		}
	}
	s.mu.Unlock()

	response.OK(c, found)
}

func (s *Server) createCategory(c *gin.Context) {
	var req wordpress.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidParam, "Missing parameter(s): name")
		return
	}
	if s.FailCategoryCreate != nil && s.FailCategoryCreate(req.Name) {
		response.Forbidden(c)
		return
	}

	s.mu.Lock()
	for _, cat := range s.categories {
		if strings.EqualFold(cat.Name, req.Name) {
			s.mu.Unlock()
			response.TermExists(c, cat.ID)
			return
		}
	}
	cat := s.addCategoryLocked(req.Name)
	s.mu.Unlock()

	response.Created(c, cat)
}

func (s *Server) createPost(c *gin.Context) {
	var req wordpress.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidParam, "Invalid JSON body")
		return
	}
	if s.FailPostCreate != nil && s.FailPostCreate(req.Title) {
		response.InternalError(c, nil)
		return
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.posts = append(s.posts, StoredPost{ID: id, Request: req})
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{
		"id":         id,
		"date":       response.DateTime(time.Now()),
		"link":       s.URL + "/?p=" + strconv.Itoa(id),
		"status":     req.Status,
		"title":      gin.H{"rendered": req.Title},
		"categories": req.Categories,
	})
}

func (s *Server) addCategoryLocked(name string) wordpress.Category {
	cat := wordpress.Category{
		ID:   s.nextID,
		Name: name,
		Slug: strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Link: s.URL + "/category/" + strings.ToLower(name) + "/",
	}
	s.nextID++
	s.categories = append(s.categories, cat)
	return cat
}
