package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pupfinder/internal/domain"
)

// DogRenderer renders dog cards. Every card is two lines tall.
type DogRenderer struct {
	styles     *Styles
	showImages bool
}

// NewDogRenderer creates a new dog renderer
func NewDogRenderer(styles *Styles, showImages bool) *DogRenderer {
	return &DogRenderer{
		styles:     styles,
		showImages: showImages,
	}
}

// RenderCard renders one dog on the results list
func (r *DogRenderer) RenderCard(dog domain.Dog, isCursor, isFavorite bool, width int) string {
	marker := "  "
	if isFavorite {
		marker = r.styles.Favorite.Render("♥ ")
	}

	cursor := "  "
	if isCursor {
		cursor = r.styles.Highlight.Render("> ")
	}

	name := dog.Name
	if isCursor {
		name = r.styles.Highlight.Render(name)
	}

	line := fmt.Sprintf("%s%s%s  %s  %s  %s",
		cursor,
		marker,
		name,
		r.styles.Breed.Render(dog.Breed),
		FormatAge(dog.Age),
		r.styles.Dim.Render("zip "+dog.ZipCode),
	)

	detail := "    "
	if r.showImages && dog.Img != "" {
		detail += r.styles.Dim.Render(truncate(dog.Img, width-4))
	}

	if isCursor {
		line = padRight(line, width)
		line = r.styles.SelectionBg.Render(line)
	}
	return line + "\n" + detail
}

// RenderDetails renders every field of a dog as plain text for the pager
func (r *DogRenderer) RenderDetails(dog domain.Dog, title string) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(title))
	b.WriteString("\n")
	fields := []struct {
		label string
		value string
	}{
		{"Name", dog.Name},
		{"Breed", dog.Breed},
		{"Age", FormatAge(dog.Age)},
		{"Zip code", dog.ZipCode},
		{"Image", dog.Img},
		{"ID", dog.ID},
	}
	for _, f := range fields {
		b.WriteString(fmt.Sprintf("  %s %s\n", r.styles.Label.Render(f.label), f.value))
	}
	return b.String()
}

// RenderMatch renders the matched dog box
func (r *DogRenderer) RenderMatch(dog domain.Dog) string {
	body := fmt.Sprintf("%s\n%s  %s  %s",
		r.styles.StatusSuccess.Render("Your match: "+dog.Name),
		r.styles.Breed.Render(dog.Breed),
		FormatAge(dog.Age),
		r.styles.Dim.Render("zip "+dog.ZipCode),
	)
	if r.showImages && dog.Img != "" {
		body += "\n" + r.styles.Dim.Render(dog.Img)
	}
	return r.styles.MatchBox.Render(body)
}

// FormatAge renders an age in years
func FormatAge(age int) string {
	if age == 1 {
		return "1 yr"
	}
	return fmt.Sprintf("%d yrs", age)
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}
	return string(runes) + "…"
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
