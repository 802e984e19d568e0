package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_NavTargetsSections(t *testing.T) {
	site := Default()

	require.Len(t, site.Header.Nav, 6)
	assert.Equal(t, "#about", site.Header.Nav[0].Href)
	assert.Equal(t, "#contact", site.Header.Nav[5].Href)
}

func TestDefault_Lookups(t *testing.T) {
	site := Default()

	exp, ok := site.FindExperience("2")
	require.True(t, ok)
	assert.Equal(t, "Foundever", exp.Company)

	_, ok = site.FindExperience("missing")
	assert.False(t, ok)

	p, ok := site.FindProject("301")
	require.True(t, ok)
	assert.Equal(t, "Healthcare Customer Support", p.Title)

	cert, ok := site.FindCertification("2")
	require.True(t, ok)
	assert.Equal(t, "https://www.eduonix.com/certificate/b3625f8c65", cert.CredentialURL)
}

func TestProject_HasDetail(t *testing.T) {
	assert.False(t, Project{Title: "bare"}.HasDetail())
	assert.True(t, Project{Role: "Lead"}.HasDetail())
	assert.True(t, Project{Achievements: []string{"shipped"}}.HasDetail())
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		site, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), site)
	})

	t.Run("overrides replace sections", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.yaml")
		data := `
hero:
  name: Jordan
certifications:
  items:
    - id: istqb
      title: ISTQB Certified Tester
      organization: ISTQB
      date: June 2023
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		site, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Jordan", site.Hero.Name)
		require.Len(t, site.Certifications.Items, 1)
		assert.Equal(t, "istqb", site.Certifications.Items[0].ID)
		assert.Empty(t, site.Certifications.Items[0].CredentialURL)
		assert.Equal(t, Default().Education, site.Education)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		site, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), site)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty experience id", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.yaml")
		data := `
experience:
  entries:
    - id: ""
      company: Acme
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidContent)
	})

	t.Run("duplicate project id", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.yaml")
		data := `
experience:
  entries:
    - id: a
      projects:
        - id: p1
    - id: b
      projects:
        - id: p1
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidContent)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("hero: [unclosed"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestSite_Validate(t *testing.T) {
	require.NoError(t, Default().Validate())

	tests := []struct {
		name   string
		mutate func(s *Site)
	}{
		{"empty experience id", func(s *Site) { s.Experience.Entries[0].ID = "" }},
		{"duplicate experience id", func(s *Site) { s.Experience.Entries[1].ID = s.Experience.Entries[0].ID }},
		{"empty project id", func(s *Site) { s.Experience.Entries[0].Projects[0].ID = "" }},
		{"project id shared across experiences", func(s *Site) {
			s.Experience.Entries[1].Projects[0].ID = s.Experience.Entries[0].Projects[0].ID
		}},
		{"empty certification id", func(s *Site) { s.Certifications.Items[0].ID = "" }},
		{"duplicate certification id", func(s *Site) {
			s.Certifications.Items = append(s.Certifications.Items, Certification{ID: s.Certifications.Items[0].ID})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := Default()
			tt.mutate(site)
			assert.ErrorIs(t, site.Validate(), ErrInvalidContent)
		})
	}
}

func TestAvatar(t *testing.T) {
	assert.Equal(t,
		"https://api.dicebear.com/7.x/avataaars/svg?seed=istqb",
		Avatar("avataaars", "istqb"))
	assert.Equal(t,
		"https://api.dicebear.com/7.x/icons/svg?seed=two+words",
		Avatar("icons", "two words"))
}
