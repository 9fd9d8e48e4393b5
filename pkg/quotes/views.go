package quotes

import (
	"context"

	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/models"
	"github.com/uptrace/bun"
)

// QuoteWithBook is the read model used by the browse pages: a quote flattened
// together with its book and the resolved author, topic, tag, and type names.
type QuoteWithBook struct {
	ID           int      `json:"id"`
	UserID       string   `json:"user_id"`
	Text         string   `json:"text"`
	BookID       int      `json:"book_id"`
	BookTitle    string   `json:"book_title"`
	Citation     *string  `json:"citation"`
	PageNumber   *string  `json:"page_number"`
	Context      *string  `json:"context"`
	QuotedBy     *int     `json:"quoted_by"`
	QuotedAuthor string   `json:"quoted_author"`
	IsImportant  *bool    `json:"is_important"`
	IsPrivate    *bool    `json:"is_private"`
	QuoteAuthors []string `json:"quote_authors"`
	QuoteTopics  []string `json:"quote_topics"`
	QuoteTags    []string `json:"quote_tags"`
	QuoteTypes   []string `json:"quote_types"`
}

const unknownAuthor = "Unknown Author"

// ListQuotesWithBookDetails returns the flattened view for every quote the
// viewer is allowed to see. Private quotes only show up for their owner;
// anonymous viewers get public quotes only.
func (svc *Service) ListQuotesWithBookDetails(ctx context.Context, viewerID *string) ([]*QuoteWithBook, error) {
	var quotes []*models.Quote
	q := svc.db.NewSelect().
		Model(&quotes).
		Relation("Book").
		Order("q.id ASC")
	if viewerID != nil {
		q = q.Where("q.is_private IS NOT 1 OR q.user_id = ?", *viewerID)
	} else {
		q = q.Where("q.is_private IS NOT 1")
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	return svc.buildQuoteViews(ctx, quotes)
}

// RetrieveQuoteWithBookDetails returns the flattened view for one quote,
// subject to the same visibility rule as the list view. A quote the viewer
// can't see is indistinguishable from one that doesn't exist.
func (svc *Service) RetrieveQuoteWithBookDetails(ctx context.Context, id int, viewerID *string) (*QuoteWithBook, error) {
	var quotes []*models.Quote
	q := svc.db.NewSelect().
		Model(&quotes).
		Relation("Book").
		Where("q.id = ?", id)
	if viewerID != nil {
		q = q.Where("q.is_private IS NOT 1 OR q.user_id = ?", *viewerID)
	} else {
		q = q.Where("q.is_private IS NOT 1")
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(quotes) == 0 {
		return nil, errcodes.NotFound("Quote")
	}

	views, err := svc.buildQuoteViews(ctx, quotes)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(views) == 0 {
		// the quote exists but its book row doesn't, so it has no view
		return nil, errcodes.NotFound("Quote")
	}
	return views[0], nil
}

func (svc *Service) buildQuoteViews(ctx context.Context, quotes []*models.Quote) ([]*QuoteWithBook, error) {
	views := make([]*QuoteWithBook, 0, len(quotes))
	if len(quotes) == 0 {
		return views, nil
	}

	ids := make([]int, 0, len(quotes))
	for _, quote := range quotes {
		ids = append(ids, quote.ID)
	}

	authorNames, err := svc.quoteAuthorNames(ctx, ids)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	topicNames, err := svc.quoteTopicNames(ctx, ids)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	tagNames, err := svc.quoteTagNames(ctx, ids)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	typeNames, err := svc.quoteTypeNames(ctx, ids)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	quotedAuthors, err := svc.quotedAuthorNames(ctx, quotes)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, quote := range quotes {
		if quote.Book == nil {
			// orphaned quote, the view contract only covers quotes with a book
			continue
		}

		view := &QuoteWithBook{
			ID:           quote.ID,
			UserID:       quote.UserID,
			Text:         quote.Text,
			BookID:       quote.BookID,
			BookTitle:    quote.Book.Title,
			Citation:     quote.Book.Citation,
			PageNumber:   quote.PageNumber,
			Context:      quote.Context,
			QuotedBy:     quote.QuotedBy,
			QuotedAuthor: unknownAuthor,
			IsImportant:  quote.IsImportant,
			IsPrivate:    quote.IsPrivate,
			QuoteAuthors: orEmpty(authorNames[quote.ID]),
			QuoteTopics:  orEmpty(topicNames[quote.ID]),
			QuoteTags:    orEmpty(tagNames[quote.ID]),
			QuoteTypes:   orEmpty(typeNames[quote.ID]),
		}
		if quote.QuotedBy != nil {
			if name, ok := quotedAuthors[*quote.QuotedBy]; ok {
				view.QuotedAuthor = name
			}
		}

		views = append(views, view)
	}

	return views, nil
}

func (svc *Service) quoteAuthorNames(ctx context.Context, quoteIDs []int) (map[int][]string, error) {
	var links []*models.QuoteAuthor
	err := svc.db.NewSelect().
		Model(&links).
		Relation("Author").
		Where("qa.quote_id IN (?)", bun.In(quoteIDs)).
		Order("qa.author_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	names := map[int][]string{}
	for _, link := range links {
		if link.Author == nil {
			continue
		}
		names[link.QuoteID] = append(names[link.QuoteID], link.Author.Name())
	}
	return names, nil
}

func (svc *Service) quoteTopicNames(ctx context.Context, quoteIDs []int) (map[int][]string, error) {
	var links []*models.QuoteTopic
	err := svc.db.NewSelect().
		Model(&links).
		Relation("Topic").
		Where("qtp.quote_id IN (?)", bun.In(quoteIDs)).
		Order("qtp.topic_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	names := map[int][]string{}
	for _, link := range links {
		if link.Topic == nil {
			continue
		}
		names[link.QuoteID] = append(names[link.QuoteID], link.Topic.Name)
	}
	return names, nil
}

func (svc *Service) quoteTagNames(ctx context.Context, quoteIDs []int) (map[int][]string, error) {
	var links []*models.QuoteTag
	err := svc.db.NewSelect().
		Model(&links).
		Relation("Tag").
		Where("qtg.quote_id IN (?)", bun.In(quoteIDs)).
		Order("qtg.tag_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	names := map[int][]string{}
	for _, link := range links {
		if link.Tag == nil {
			continue
		}
		names[link.QuoteID] = append(names[link.QuoteID], link.Tag.Name)
	}
	return names, nil
}

func (svc *Service) quoteTypeNames(ctx context.Context, quoteIDs []int) (map[int][]string, error) {
	var links []*models.QuoteType
	err := svc.db.NewSelect().
		Model(&links).
		Relation("Type").
		Where("qty.quote_id IN (?)", bun.In(quoteIDs)).
		Order("qty.type_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	names := map[int][]string{}
	for _, link := range links {
		if link.Type == nil {
			continue
		}
		names[link.QuoteID] = append(names[link.QuoteID], link.Type.Name)
	}
	return names, nil
}

func (svc *Service) quotedAuthorNames(ctx context.Context, quotes []*models.Quote) (map[int]string, error) {
	ids := make([]int, 0, len(quotes))
	seen := map[int]bool{}
	for _, quote := range quotes {
		if quote.QuotedBy == nil || seen[*quote.QuotedBy] {
			continue
		}
		seen[*quote.QuotedBy] = true
		ids = append(ids, *quote.QuotedBy)
	}

	names := map[int]string{}
	if len(ids) == 0 {
		return names, nil
	}

	var authors []*models.Author
	err := svc.db.NewSelect().
		Model(&authors).
		Where("a.id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for _, author := range authors {
		names[author.ID] = author.Name()
	}
	return names, nil
}

func orEmpty(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
