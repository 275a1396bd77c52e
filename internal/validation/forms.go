package validation

import (
	"maps"
	"strconv"
	"strings"

	"github.com/mmcdole/pagemark/internal/domain"
)

// BookInput is the raw text of the book form
type BookInput struct {
	Title       string
	Author      string
	TotalPages  string
	CurrentPage string // Empty means 0
	Status      string // Empty means to-read
	Genre       string
	CoverURL    string
	Rating      string // Empty means unrated
	Description string
}

// BookForm is a parsed book form
type BookForm struct {
	Title       string `json:"title" validate:"notblank"`
	Author      string `json:"author" validate:"notblank"`
	TotalPages  int    `json:"totalPages" validate:"gte=1"`
	CurrentPage int    `json:"currentPage" validate:"gte=0,ltefield=TotalPages"`
	Status      string `json:"status" validate:"oneof=to-read reading finished paused"`
	Genre       string `json:"genre"`
	CoverURL    string `json:"coverUrl" validate:"omitempty,url"`
	Rating      int    `json:"rating" validate:"gte=0,lte=5"`
	Description string `json:"description"`
}

// NoteInput is the raw text of the note form
type NoteInput struct {
	BookID  string
	Page    string
	Content string
	Tags    string // Comma separated
}

// NoteForm is a parsed note form. MaxPage is the parent book's page count;
// zero skips the upper bound.
type NoteForm struct {
	BookID  string   `json:"bookId" validate:"notblank"`
	Page    int      `json:"page" validate:"gte=1"`
	MaxPage int      `json:"-"`
	Content string   `json:"content" validate:"notblank"`
	Tags    []string `json:"tags"`
}

// Book parses and validates in. Unparsable numbers are reported alongside
// the rule failures of the remaining fields.
func (v *Validator) Book(in BookInput) (domain.Book, error) {
	numErrs := make(map[string]string)
	form := BookForm{
		Title:       strings.TrimSpace(in.Title),
		Author:      strings.TrimSpace(in.Author),
		TotalPages:  parseInt(numErrs, "totalPages", in.TotalPages),
		CurrentPage: parseInt(numErrs, "currentPage", in.CurrentPage),
		Status:      strings.TrimSpace(in.Status),
		Genre:       strings.TrimSpace(in.Genre),
		CoverURL:    strings.TrimSpace(in.CoverURL),
		Rating:      parseInt(numErrs, "rating", in.Rating),
		Description: strings.TrimSpace(in.Description),
	}
	if form.Status == "" {
		form.Status = string(domain.StatusToRead)
	}

	if err := merge(v.Validate(form), numErrs); err != nil {
		return domain.Book{}, err
	}

	return domain.Book{
		Title:       form.Title,
		Author:      form.Author,
		TotalPages:  form.TotalPages,
		CurrentPage: form.CurrentPage,
		Status:      domain.BookStatus(form.Status),
		Genre:       form.Genre,
		CoverURL:    form.CoverURL,
		Rating:      form.Rating,
		Description: form.Description,
	}, nil
}

// Note parses and validates in against a book with maxPage pages.
func (v *Validator) Note(in NoteInput, maxPage int) (domain.Note, error) {
	numErrs := make(map[string]string)
	form := NoteForm{
		BookID:  strings.TrimSpace(in.BookID),
		Page:    parseInt(numErrs, "page", in.Page),
		MaxPage: maxPage,
		Content: strings.TrimSpace(in.Content),
		Tags:    ParseTags(in.Tags),
	}

	ruleErr := v.Validate(form)
	if _, bad := numErrs["page"]; !bad && form.MaxPage > 0 && form.Page > form.MaxPage {
		numErrs["page"] = "must not exceed " + strconv.Itoa(form.MaxPage)
	}
	if err := merge(ruleErr, numErrs); err != nil {
		return domain.Note{}, err
	}

	return domain.Note{
		BookID:  form.BookID,
		Page:    form.Page,
		Content: form.Content,
		Tags:    form.Tags,
	}, nil
}

// ParseTags splits a comma-separated list, trimming each tag and
// dropping empties. Returns nil when no tags remain.
func ParseTags(s string) []string {
	var tags []string
	for part := range strings.SplitSeq(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// parseInt reads an optional integer; blank is 0. Failures are recorded
// under field and also return 0.
func parseInt(errs map[string]string, field, s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		errs[field] = "must be a whole number"
		return 0
	}
	return n
}

// merge folds extra field messages into err. Messages in extra win.
func merge(err error, extra map[string]string) error {
	if err == nil && len(extra) == 0 {
		return nil
	}
	out := &Error{Fields: make(map[string]string)}
	if err != nil {
		verr, ok := err.(*Error)
		if !ok {
			return err
		}
		maps.Copy(out.Fields, verr.Fields)
	}
	maps.Copy(out.Fields, extra)
	return out
}
