package store

import "github.com/jonathan/cvmaker/internal/types"

// ContactPatch carries partial contact updates. Nil fields retain the prior value.
type ContactPatch struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	Website  *string `json:"website,omitempty"`
}

func (p ContactPatch) apply(c *types.ContactInfo) {
	if p.FullName != nil {
		c.FullName = *p.FullName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.LinkedIn != nil {
		c.LinkedIn = *p.LinkedIn
	}
	if p.Website != nil {
		c.Website = *p.Website
	}
}

// SettingsPatch carries partial settings updates.
type SettingsPatch struct {
	Template    *types.TemplateType `json:"template,omitempty" validate:"omitempty,oneof=classic modern clean executive"`
	Font        *types.FontFamily   `json:"font,omitempty" validate:"omitempty,oneof=inter montserrat calibri garamond georgia arial"`
	AccentColor *string             `json:"accentColor,omitempty"`
	FontSize    *types.FontSize     `json:"fontSize,omitempty" validate:"omitempty,oneof=small medium large"`
	PageSize    *types.PageSize     `json:"pageSize,omitempty" validate:"omitempty,oneof=letter a4"`
}

func (p SettingsPatch) apply(s *types.ResumeSettings) {
	if p.Template != nil {
		s.Template = *p.Template
	}
	if p.Font != nil {
		s.Font = *p.Font
	}
	if p.AccentColor != nil {
		s.AccentColor = *p.AccentColor
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.PageSize != nil {
		s.PageSize = *p.PageSize
	}
}

// SectionPatch carries partial section updates. Type is fixed at creation;
// title, visibility, and column placement are editable.
type SectionPatch struct {
	Title   *string       `json:"title,omitempty"`
	Visible *bool         `json:"visible,omitempty"`
	Column  *types.Column `json:"column,omitempty" validate:"omitempty,oneof=left right"`
}

func (p SectionPatch) apply(s *types.Section) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Visible != nil {
		s.Visible = *p.Visible
	}
	if p.Column != nil {
		s.Column = *p.Column
	}
}

// EntryPatch carries partial entry updates.
type EntryPatch struct {
	Title        *string   `json:"title,omitempty"`
	URL          *string   `json:"url,omitempty"`
	Organization *string   `json:"organization,omitempty"`
	Location     *string   `json:"location,omitempty"`
	StartDate    *string   `json:"startDate,omitempty"`
	EndDate      *string   `json:"endDate,omitempty"`
	Current      *bool     `json:"current,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Skills       *[]string `json:"skills,omitempty"`
}

func (p EntryPatch) apply(e *types.Entry) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.URL != nil {
		e.URL = *p.URL
	}
	if p.Organization != nil {
		e.Organization = *p.Organization
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Skills != nil {
		e.Skills = append([]string(nil), (*p.Skills)...)
	}
	if p.Current != nil {
		e.Current = *p.Current
		// Marking an entry as current clears the stored end date. Unmarking
		// leaves the field untouched.
		if *p.Current {
			e.EndDate = ""
		}
	}
}
