package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/studio-ormeau/folio/internal/models"
)

type seedProject struct {
	title       string
	description string
	image       string
	tags        []string
	featured    bool
}

var seedProjects = []seedProject{
	{
		title:       "E-Commerce Platform",
		description: "A full-featured online shopping platform with cart functionality, user authentication, and payment processing.",
		image:       "https://images.pexels.com/photos/927443/pexels-photo-927443.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		tags:        []string{"React", "Node.js", "MongoDB", "Stripe"},
		featured:    true,
	},
	{
		title:       "Task Management App",
		description: "A Kanban-style task management application with drag-and-drop functionality and team collaboration features.",
		image:       "https://images.pexels.com/photos/3183150/pexels-photo-3183150.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		tags:        []string{"React", "TypeScript", "Firebase"},
		featured:    true,
	},
	{
		title:       "Weather Dashboard",
		description: "A beautiful weather application with forecast data, location search, and customizable units.",
		image:       "https://images.pexels.com/photos/1118873/pexels-photo-1118873.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		tags:        []string{"JavaScript", "API", "CSS"},
	},
	{
		title:       "Portfolio Website",
		description: "A responsive portfolio website showcasing projects and skills with a modern design.",
		image:       "https://images.pexels.com/photos/1779487/pexels-photo-1779487.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		tags:        []string{"React", "Tailwind CSS", "Animation"},
	},
	{
		title:       "Recipe Finder App",
		description: "An application to search, save, and share cooking recipes with ingredient-based filtering.",
		image:       "https://images.pexels.com/photos/1640774/pexels-photo-1640774.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		tags:        []string{"React", "API", "Firebase"},
	},
	{
		title:       "Fitness Tracker",
		description: "A workout tracking application with progress visualization and custom routine creation.",
		image:       "https://images.pexels.com/photos/841130/pexels-photo-841130.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		tags:        []string{"React Native", "Redux", "GraphQL"},
	},
}

var seedSkills = []models.Skill{
	{Name: "HTML5", Level: 90, Category: models.CategoryFrontend},
	{Name: "CSS3", Level: 85, Category: models.CategoryFrontend},
	{Name: "JavaScript", Level: 90, Category: models.CategoryFrontend},
	{Name: "TypeScript", Level: 80, Category: models.CategoryFrontend},
	{Name: "React", Level: 85, Category: models.CategoryFrontend},
	{Name: "Vue.js", Level: 75, Category: models.CategoryFrontend},
	{Name: "Tailwind CSS", Level: 80, Category: models.CategoryFrontend},
	{Name: "Node.js", Level: 85, Category: models.CategoryBackend},
	{Name: "Express.js", Level: 80, Category: models.CategoryBackend},
	{Name: "Python", Level: 85, Category: models.CategoryBackend},
	{Name: "Flask", Level: 80, Category: models.CategoryBackend},
	{Name: "GraphQL", Level: 75, Category: models.CategoryBackend},
	{Name: "PostgreSQL", Level: 80, Category: models.CategoryDatabase},
	{Name: "MongoDB", Level: 75, Category: models.CategoryDatabase},
	{Name: "SQLite", Level: 85, Category: models.CategoryDatabase},
	{Name: "Docker", Level: 70, Category: models.CategoryDevOps},
	{Name: "CI/CD", Level: 70, Category: models.CategoryDevOps},
	{Name: "React Native", Level: 65, Category: models.CategoryMobile},
	{Name: "Figma", Level: 60, Category: models.CategoryDesign},
	{Name: "Git", Level: 90, Category: models.CategoryOther},
}

// Seed wipes portfolio content (projects, tags, skills) and repopulates
// it with sample data. Users and contact messages are left alone.
func (db *DB) Seed() error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM project_tags",
			"DELETE FROM projects",
			"DELETE FROM tags",
			"DELETE FROM skills",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("clear existing data: %w", err)
			}
		}

		for _, sp := range seedProjects {
			tags, err := ensureTags(tx, sp.tags)
			if err != nil {
				return fmt.Errorf("seed tags: %w", err)
			}
			demo, repo := "#", "#"
			project := models.Project{
				Title:       sp.title,
				Description: sp.description,
				Image:       sp.image,
				DemoURL:     &demo,
				RepoURL:     &repo,
				Featured:    sp.featured,
				Tags:        tags,
			}
			if err := tx.Create(&project).Error; err != nil {
				return fmt.Errorf("seed project %q: %w", sp.title, err)
			}
		}

		for _, skill := range seedSkills {
			s := skill
			if err := tx.Create(&s).Error; err != nil {
				return fmt.Errorf("seed skill %q: %w", skill.Name, err)
			}
		}

		return nil
	})
}
