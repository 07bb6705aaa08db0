package catalog

import "github.com/mmcdole/bookshelf/internal/domain"

const placeholderCover = "/placeholder.svg"

var defaultShelves = []ShelfDef{
	{ID: "new-releases", Title: "New Releases", Start: 0, End: 4},
	{ID: "popular", Title: "Popular Now", Start: 1, End: 5},
	{ID: "staff-picks", Title: "Staff Picks", Start: 2, End: 6},
}

func defaultBooks() []domain.Book {
	return []domain.Book{
		{
			ID:          "1",
			Title:       "The Midnight Library",
			Author:      "Matt Haig",
			CoverURL:    placeholderCover,
			Description: "Between life and death there is a library, and within that library, the shelves go on forever.",
			Genre:       "Fiction",
			PublishDate: "2020-08-13",
			Pages:       288,
			Type:        domain.BookTypeBoth,
			Available:   true,
			Rating:      4.2,
			Tags:        []string{},
		},
		{
			ID:          "2",
			Title:       "Atomic Habits",
			Author:      "James Clear",
			CoverURL:    placeholderCover,
			Description: "An Easy & Proven Way to Build Good Habits & Break Bad Ones",
			Genre:       "Self-Help",
			PublishDate: "2018-10-16",
			Duration:    "5h 35m",
			Pages:       320,
			Type:        domain.BookTypeBoth,
			Available:   true,
			Rating:      4.7,
			Tags:        []string{},
		},
		{
			ID:          "3",
			Title:       "The Seven Husbands of Evelyn Hugo",
			Author:      "Taylor Jenkins Reid",
			CoverURL:    placeholderCover,
			Description: "Aging and reclusive Hollywood movie icon Evelyn Hugo is finally ready to tell the truth about her glamorous and scandalous life.",
			Genre:       "Fiction",
			PublishDate: "2017-06-13",
			Pages:       400,
			Type:        domain.BookTypeEbook,
			Available:   false,
			Rating:      4.5,
			Tags:        []string{},
		},
		{
			ID:          "4",
			Title:       "Educated",
			Author:      "Tara Westover",
			CoverURL:    placeholderCover,
			Description: "A Memoir",
			Genre:       "Biography",
			PublishDate: "2018-02-20",
			Duration:    "12h 10m",
			Pages:       334,
			Type:        domain.BookTypeBoth,
			Available:   true,
			Rating:      4.4,
			Tags:        []string{},
		},
		{
			ID:          "5",
			Title:       "Project Hail Mary",
			Author:      "Andy Weir",
			CoverURL:    placeholderCover,
			Description: "A lone astronaut must save the earth from disaster in this incredible new science-based thriller.",
			Genre:       "Science Fiction",
			PublishDate: "2021-05-04",
			Duration:    "16h 10m",
			Pages:       496,
			Type:        domain.BookTypeAudiobook,
			Available:   true,
			Rating:      4.6,
			Tags:        []string{},
		},
		{
			ID:          "6",
			Title:       "The Thursday Murder Club",
			Author:      "Richard Osman",
			CoverURL:    placeholderCover,
			Description: "In a peaceful retirement village, four unlikely friends meet weekly in the Jigsaw Room to discuss unsolved crimes.",
			Genre:       "Mystery",
			PublishDate: "2020-09-03",
			Pages:       368,
			Type:        domain.BookTypeEbook,
			Available:   true,
			Rating:      4.1,
			Tags:        []string{},
		},
	}
}
