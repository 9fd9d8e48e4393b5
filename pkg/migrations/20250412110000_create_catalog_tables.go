package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE qt_authors (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				birth_year INTEGER,
				death_year INTEGER,
				nationality TEXT,
				biography TEXT
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_qt_authors_name ON qt_authors (first_name, last_name)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_qt_authors_nationality ON qt_authors (nationality)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE qt_countries (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_qt_countries_name ON qt_countries (name)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE qt_states (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				abbreviation TEXT,
				country_id INTEGER REFERENCES qt_countries (id) NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_qt_states_name ON qt_states (name)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_qt_states_abbreviation ON qt_states (abbreviation)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE qt_cities (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				state_id INTEGER REFERENCES qt_states (id),
				country_id INTEGER REFERENCES qt_countries (id) NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_qt_cities_name ON qt_cities (name)`)
		if err != nil {
			return errors.WithStack(err)
		}
		for _, table := range []string{"qt_genres", "qt_tags", "qt_topics", "qt_types"} {
			_, err = db.Exec(`
				CREATE TABLE ` + table + ` (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					description TEXT
				)
`)
			if err != nil {
				return errors.WithStack(err)
			}
			_, err = db.Exec(`CREATE UNIQUE INDEX ux_` + table + `_name ON ` + table + ` (name)`)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		_, err = db.Exec(`
			CREATE TABLE qt_publishers (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				city_id INTEGER REFERENCES qt_cities (id) NOT NULL,
				state_id INTEGER REFERENCES qt_states (id) NOT NULL,
				country_id INTEGER REFERENCES qt_countries (id) NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_qt_publishers_name ON qt_publishers (name)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE qt_books (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL,
				publication_year TEXT,
				isbn TEXT,
				publisher_id INTEGER REFERENCES qt_publishers (id) NOT NULL,
				summary TEXT,
				citation TEXT,
				source_link TEXT,
				rating INTEGER
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_qt_books_isbn ON qt_books (isbn)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_qt_books_title ON qt_books (title)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_qt_books_publisher_id ON qt_books (publisher_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE qt_users (
				id TEXT PRIMARY KEY,
				external_id TEXT,
				name TEXT,
				email TEXT NOT NULL,
				email_verified TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
				image TEXT
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_qt_users_email ON qt_users (email)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_qt_users_external_id ON qt_users (external_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE qt_quotes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id TEXT REFERENCES qt_users (id) NOT NULL,
				text TEXT NOT NULL,
				book_id INTEGER REFERENCES qt_books (id) NOT NULL,
				context TEXT,
				page_number TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ,
				quoted_by INTEGER REFERENCES qt_authors (id),
				is_important BOOLEAN,
				is_private BOOLEAN
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		for _, ix := range []string{"book_id", "user_id", "quoted_by", "is_important"} {
			_, err = db.Exec(`CREATE INDEX ix_qt_quotes_` + ix + ` ON qt_quotes (` + ix + `)`)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		// Junction tables: composite-key pairs with no payload.
		junctions := []struct {
			table    string
			leftCol  string
			leftRef  string
			rightCol string
			rightRef string
		}{
			{"qt_book_authors", "book_id", "qt_books", "author_id", "qt_authors"},
			{"qt_book_genres", "book_id", "qt_books", "genre_id", "qt_genres"},
			{"qt_country_cities", "country_id", "qt_countries", "city_id", "qt_cities"},
			{"qt_country_states", "country_id", "qt_countries", "state_id", "qt_states"},
			{"qt_publisher_books", "publisher_id", "qt_publishers", "book_id", "qt_books"},
			{"qt_publisher_cities", "publisher_id", "qt_publishers", "city_id", "qt_cities"},
			{"qt_quote_authors", "quote_id", "qt_quotes", "author_id", "qt_authors"},
			{"qt_quote_tags", "quote_id", "qt_quotes", "tag_id", "qt_tags"},
			{"qt_quote_topics", "quote_id", "qt_quotes", "topic_id", "qt_topics"},
			{"qt_quote_types", "quote_id", "qt_quotes", "type_id", "qt_types"},
			{"qt_state_cities", "state_id", "qt_states", "city_id", "qt_cities"},
		}
		for _, j := range junctions {
			_, err = db.Exec(`
				CREATE TABLE ` + j.table + ` (
					` + j.leftCol + ` INTEGER REFERENCES ` + j.leftRef + ` (id) NOT NULL,
					` + j.rightCol + ` INTEGER REFERENCES ` + j.rightRef + ` (id) NOT NULL,
					PRIMARY KEY (` + j.leftCol + `, ` + j.rightCol + `)
				)
`)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	down := func(_ context.Context, db *bun.DB) error {
		tables := []string{
			"qt_state_cities", "qt_quote_types", "qt_quote_topics", "qt_quote_tags",
			"qt_quote_authors", "qt_publisher_cities", "qt_publisher_books",
			"qt_country_states", "qt_country_cities", "qt_book_genres", "qt_book_authors",
			"qt_quotes", "qt_users", "qt_books", "qt_publishers", "qt_types", "qt_topics",
			"qt_tags", "qt_genres", "qt_cities", "qt_states", "qt_countries", "qt_authors",
		}
		for _, table := range tables {
			_, err := db.Exec("DROP TABLE IF EXISTS " + table)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
