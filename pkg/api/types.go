package api

import "time"

// Project is a portfolio project as exposed by the REST API. Tags are
// plain names in association order.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	DemoURL     *string  `json:"demoUrl"`
	RepoURL     *string  `json:"repoUrl"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags"`
}

// Skill is a skill entry with a proficiency level in [1,100].
type Skill struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// Tag is a read-only reference entry used for project tag suggestions.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectPayload is the body for creating or updating a project.
type ProjectPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	DemoURL     *string  `json:"demoUrl"`
	RepoURL     *string  `json:"repoUrl"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags"`
}

// SkillPayload is the body for creating or updating a skill.
type SkillPayload struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// ContactPayload is the body for the public contact form.
type ContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ProjectListOptions narrow ListProjects server-side.
type ProjectListOptions struct {
	Featured bool
	Tag      string
}
