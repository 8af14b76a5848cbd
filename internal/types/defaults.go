package types

import "github.com/google/uuid"

// NewEntry returns a zero-valued entry with a fresh unique id.
// Any string is accepted in the free-text fields, including empty.
func NewEntry() Entry {
	return Entry{
		ID:     uuid.NewString(),
		Skills: []string{},
	}
}

// NewSection returns a section of the given type and title with a fresh id.
// Entries start empty; the store seeds the single entry for skills/languages.
func NewSection(t SectionType, title string) Section {
	return Section{
		ID:      uuid.NewString(),
		Type:    t,
		Title:   title,
		Visible: true,
		Entries: []Entry{},
	}
}

// DefaultSettings returns the visual configuration of a fresh document.
func DefaultSettings() ResumeSettings {
	return ResumeSettings{
		Template:    TemplateClassic,
		Font:        FontInter,
		AccentColor: "#2563eb",
		FontSize:    SizeMedium,
		PageSize:    PageLetter,
	}
}

// DefaultResume returns the canonical sample document installed on first run
// and on reset. The content mirrors the sample CV shipped with the editor.
func DefaultResume() Resume {
	summary := NewSection(SectionSummary, "Resumen Profesional")
	summaryEntry := NewEntry()
	summaryEntry.Description = "Ingeniera de software con 5 años de experiencia desarrollando aplicaciones web escalables. Especializada en React, TypeScript y Node.js. Apasionada por crear productos que resuelvan problemas reales con código limpio y buenas prácticas."
	summary.Entries = []Entry{summaryEntry}

	experience := NewSection(SectionExperience, "Experiencia Laboral")
	job1 := NewEntry()
	job1.Title = "Senior Frontend Developer"
	job1.Organization = "TechCorp Solutions"
	job1.Location = "Ciudad de México"
	job1.StartDate = "03/2022"
	job1.Current = true
	job1.Description = "• Lideré la migración de una SPA legacy a React + TypeScript, reduciendo el tiempo de carga un 40%\n• Implementé un design system reutilizable usado por 3 equipos de producto\n• Mentoré a 4 desarrolladores junior en buenas prácticas de frontend"
	job2 := NewEntry()
	job2.Title = "Frontend Developer"
	job2.Organization = "StartupMX"
	job2.Location = "Guadalajara, México"
	job2.StartDate = "06/2019"
	job2.EndDate = "02/2022"
	job2.Description = "• Desarrollé la plataforma de e-commerce desde cero con React y Node.js, alcanzando 50K usuarios activos\n• Optimicé el rendimiento del sitio logrando un score de 95+ en Lighthouse\n• Integré pasarelas de pago (Stripe, PayPal) procesando +$2M en transacciones"
	experience.Entries = []Entry{job1, job2}

	education := NewSection(SectionEducation, "Educación")
	degree := NewEntry()
	degree.Title = "Ingeniería en Sistemas Computacionales"
	degree.Organization = "Tecnológico de Monterrey"
	degree.Location = "Monterrey, México"
	degree.StartDate = "08/2015"
	degree.EndDate = "06/2019"
	degree.Description = "Graduada con honores. Especialización en Desarrollo de Software."
	education.Entries = []Entry{degree}

	skills := NewSection(SectionSkills, "Habilidades")
	skillEntry := NewEntry()
	skillEntry.Skills = []string{
		"React", "TypeScript", "JavaScript", "Node.js", "HTML/CSS",
		"Tailwind CSS", "Git", "REST APIs", "PostgreSQL", "Docker",
		"CI/CD", "Agile/Scrum",
	}
	skills.Entries = []Entry{skillEntry}

	return Resume{
		ID:       uuid.NewString(),
		Title:    "Mi CV",
		Settings: DefaultSettings(),
		Contact: ContactInfo{
			FullName: "María García López",
			Email:    "maria.garcia@email.com",
			Phone:    "+52 55 1234 5678",
			Location: "Ciudad de México, México",
			LinkedIn: "linkedin.com/in/mariagarcia",
			Website:  "mariagarcia.dev",
		},
		Sections: []Section{summary, experience, education, skills},
	}
}
