package service

import "eventhub/pkg/model"

func sampleEvents() []*model.Event {
	return []*model.Event{
		{
			Title:       "Summer Music Fest",
			Description: "A full day of live bands, food trucks and open-air stages.",
			Date:        "2026-07-18",
			Location:    "Riverside Park",
			Price:       45,
			Featured:    true,
			ImageURL:    "https://images.unsplash.com/photo-1459749411175-04bf5292ceea",
			Tags:        []string{"music", "outdoor", "festival"},
		},
		{
			Title:       "Tech Talks Night",
			Description: "Lightning talks from local engineers, followed by networking.",
			Date:        "2026-05-21",
			Location:    "Innovation Hub, Hall B",
			Price:       0,
			ImageURL:    "https://images.unsplash.com/photo-1540575467063-178a50c2df87",
			Tags:        []string{"tech", "networking"},
		},
		{
			Title:       "Food & Wine Tasting",
			Description: "Seasonal pairings from regional wineries and chefs.",
			Date:        "2026-09-05",
			Location:    "Old Harbor Warehouse",
			Price:       75,
			ImageURL:    "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3",
			Tags:        []string{"food", "wine"},
		},
	}
}

// sampleServices includes a catering offer with DurationMinutes 0, which is
// how untimed services are represented.
func sampleServices() []*model.Service {
	return []*model.Service{
		{
			Name:            "DJ & Sound",
			Description:     "Professional DJ with PA system and lighting.",
			Price:           200,
			DurationMinutes: 240,
			ImageURL:        "https://images.unsplash.com/photo-1571266028243-d220c9c3b2d2",
			Category:        "Entertainment",
		},
		{
			Name:            "Event Photography",
			Description:     "Candid and posed coverage with edited gallery delivery.",
			Price:           350,
			DurationMinutes: 180,
			ImageURL:        "https://images.unsplash.com/photo-1516035069371-29a1b244cc32",
			Category:        "Photography",
		},
		{
			Name:            "Catering Package",
			Description:     "Buffet menu for up to 100 guests, priced per event.",
			Price:           1200,
			DurationMinutes: 0,
			ImageURL:        "https://images.unsplash.com/photo-1555244162-803834f70033",
			Category:        "Food",
		},
		{
			Name:            "Venue Decoration",
			Description:     "Floral arrangements, table settings and ambient lighting.",
			Price:           500,
			DurationMinutes: 120,
			ImageURL:        "https://images.unsplash.com/photo-1519167758481-83f550bb49b3",
			Category:        "Decor",
		},
	}
}
