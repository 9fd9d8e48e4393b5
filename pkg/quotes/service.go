package quotes

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/models"
	"github.com/uptrace/bun"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

type CreateQuoteOptions struct {
	Quote    *models.Quote
	TopicIDs []int
	TagIDs   []int
	TypeIDs  []int
}

// CreateQuote inserts the quote and its topic, tag, and type associations in
// one transaction. Author links are not taken from the payload: every author
// linked to the quote's book is copied onto the quote so the attribution can't
// drift from the book's own author list.
func (svc *Service) CreateQuote(ctx context.Context, opts CreateQuoteOptions) error {
	quote := opts.Quote
	quote.CreatedAt = time.Now()
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(quote).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if quote.ID <= 0 {
			return errors.New("quote insert returned an invalid id")
		}

		var bookAuthors []*models.BookAuthor
		err = tx.NewSelect().
			Model(&bookAuthors).
			Where("ba.book_id = ?", quote.BookID).
			Scan(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		for _, ba := range bookAuthors {
			link := &models.QuoteAuthor{QuoteID: quote.ID, AuthorID: ba.AuthorID}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return errors.WithStack(err)
			}
		}

		for _, topicID := range opts.TopicIDs {
			link := &models.QuoteTopic{QuoteID: quote.ID, TopicID: topicID}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return errors.WithStack(err)
			}
		}
		for _, tagID := range opts.TagIDs {
			link := &models.QuoteTag{QuoteID: quote.ID, TagID: tagID}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return errors.WithStack(err)
			}
		}
		for _, typeID := range opts.TypeIDs {
			link := &models.QuoteType{QuoteID: quote.ID, TypeID: typeID}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	})
}

type UpdateQuoteOptions struct {
	Text        *string
	BookID      *int
	Context     *string
	PageNumber  *string
	QuotedBy    *int
	IsImportant *bool
	IsPrivate   *bool
	TopicIDs    *[]int
	TagIDs      *[]int
	TypeIDs     *[]int
}

// UpdateQuote applies the given scalar changes and, for each id slice that is
// present, replaces all links of that kind. Author links never change here;
// they are derived at create time.
func (svc *Service) UpdateQuote(ctx context.Context, id int, opts UpdateQuoteOptions) (*models.Quote, error) {
	quote, err := svc.RetrieveQuote(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	err = svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if opts.Text != nil {
			quote.Text = *opts.Text
		}
		if opts.BookID != nil {
			quote.BookID = *opts.BookID
		}
		if opts.Context != nil {
			quote.Context = opts.Context
		}
		if opts.PageNumber != nil {
			quote.PageNumber = opts.PageNumber
		}
		if opts.QuotedBy != nil {
			quote.QuotedBy = opts.QuotedBy
		}
		if opts.IsImportant != nil {
			quote.IsImportant = opts.IsImportant
		}
		if opts.IsPrivate != nil {
			quote.IsPrivate = opts.IsPrivate
		}
		now := time.Now()
		quote.UpdatedAt = &now

		_, err := tx.NewUpdate().
			Model(quote).
			Column("text", "book_id", "context", "page_number", "quoted_by", "is_important", "is_private", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		if opts.TopicIDs != nil {
			_, err := tx.NewDelete().
				Model((*models.QuoteTopic)(nil)).
				Where("quote_id = ?", id).
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
			for _, topicID := range *opts.TopicIDs {
				link := &models.QuoteTopic{QuoteID: id, TopicID: topicID}
				if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
					return errors.WithStack(err)
				}
			}
		}

		if opts.TagIDs != nil {
			_, err := tx.NewDelete().
				Model((*models.QuoteTag)(nil)).
				Where("quote_id = ?", id).
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
			for _, tagID := range *opts.TagIDs {
				link := &models.QuoteTag{QuoteID: id, TagID: tagID}
				if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
					return errors.WithStack(err)
				}
			}
		}

		if opts.TypeIDs != nil {
			_, err := tx.NewDelete().
				Model((*models.QuoteType)(nil)).
				Where("quote_id = ?", id).
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
			for _, typeID := range *opts.TypeIDs {
				link := &models.QuoteType{QuoteID: id, TypeID: typeID}
				if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
					return errors.WithStack(err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return quote, nil
}

// DeleteQuote removes the quote and its author, topic, tag, and type links.
// The junction tables carry no foreign key actions, so the links go first.
func (svc *Service) DeleteQuote(ctx context.Context, id int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.QuoteAuthor)(nil)).
			Where("quote_id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = tx.NewDelete().
			Model((*models.QuoteTopic)(nil)).
			Where("quote_id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = tx.NewDelete().
			Model((*models.QuoteTag)(nil)).
			Where("quote_id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = tx.NewDelete().
			Model((*models.QuoteType)(nil)).
			Where("quote_id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		res, err := tx.NewDelete().
			Model((*models.Quote)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return errors.WithStack(err)
		}
		if affected == 0 {
			return errcodes.NotFound("Quote")
		}

		return nil
	})
}

func (svc *Service) ListQuotes(ctx context.Context) ([]*models.Quote, error) {
	var quotes []*models.Quote
	err := svc.db.NewSelect().
		Model(&quotes).
		Order("q.id ASC").
		Scan(ctx)
	return quotes, errors.WithStack(err)
}

func (svc *Service) RetrieveQuote(ctx context.Context, id int) (*models.Quote, error) {
	quote := &models.Quote{}
	err := svc.db.NewSelect().
		Model(quote).
		Where("q.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Quote")
		}
		return nil, errors.WithStack(err)
	}
	return quote, nil
}

func (svc *Service) RandomQuote(ctx context.Context) (*models.Quote, error) {
	quote := &models.Quote{}
	err := svc.db.NewSelect().
		Model(quote).
		Order("q.id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Quote")
		}
		return nil, errors.WithStack(err)
	}
	return quote, nil
}

// ListQuoteAuthors returns the raw author link rows for a quote.
func (svc *Service) ListQuoteAuthors(ctx context.Context, quoteID int) ([]*models.QuoteAuthor, error) {
	var links []*models.QuoteAuthor
	err := svc.db.NewSelect().
		Model(&links).
		Where("qa.quote_id = ?", quoteID).
		Order("qa.author_id ASC").
		Scan(ctx)
	return links, errors.WithStack(err)
}
