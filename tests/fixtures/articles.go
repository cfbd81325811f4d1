// Package fixtures provides reusable bilingual article test data.
// The set is deterministic so tests can assert on specific IDs and ordering.
package fixtures

import (
	"time"

	"nashra/internal/domain/entity"
)

// Base is the reference publication time for the fixture set.
var Base = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func strptr(s string) *string { return &s }

// Articles returns a fresh copy of the bilingual fixture set: three English
// and three Arabic articles with distinct categories, ordered here from
// newest to oldest by PublishedAt.
func Articles() []*entity.Article {
	return []*entity.Article{
		{
			ID:          "11111111-1111-4111-8111-111111111111",
			Title:       "Championship final set after dramatic semifinal",
			Summary:     "A late goal decided the tie.",
			Category:    entity.CategorySports,
			Language:    entity.LanguageEnglish,
			Author:      "Sports Desk",
			ReadMinutes: 3,
			IsBreaking:  true,
			PublishedAt: Base,
			UpdatedAt:   Base,
		},
		{
			ID:          "22222222-2222-4222-8222-222222222222",
			Title:       "عاجل: إعلان نتائج الانتخابات المحلية",
			Summary:     "اللجنة تعلن النتائج النهائية بعد فرز جميع الأصوات.",
			Content:     strptr("أعلنت اللجنة العليا للانتخابات النتائج النهائية للانتخابات المحلية بعد انتهاء عمليات الفرز في جميع الدوائر."),
			Category:    entity.CategoryPolitics,
			Language:    entity.LanguageArabic,
			Author:      "مراسل الشؤون السياسية",
			ReadMinutes: 4,
			IsBreaking:  true,
			PublishedAt: Base.Add(-1 * time.Hour),
			UpdatedAt:   Base.Add(-1 * time.Hour),
		},
		{
			ID:          "33333333-3333-4333-8333-333333333333",
			Title:       "Chipmaker opens regional assembly plant",
			Summary:     "The facility is expected to employ two thousand people.",
			Content:     strptr("The plant will assemble and test chips for automotive customers, with production scheduled to begin next quarter."),
			Category:    entity.CategoryTechnology,
			Language:    entity.LanguageEnglish,
			Author:      "Lina Haddad",
			ReadMinutes: 6,
			Views:       120,
			PublishedAt: Base.Add(-3 * time.Hour),
			UpdatedAt:   Base.Add(-3 * time.Hour),
		},
		{
			ID:          "44444444-4444-4444-8444-444444444444",
			Title:       "ارتفاع أسعار النفط يدعم الموازنات الخليجية",
			Summary:     "الأسعار تسجل أعلى مستوى لها منذ عام.",
			Category:    entity.CategoryBusiness,
			Language:    entity.LanguageArabic,
			Author:      "قسم الاقتصاد",
			ReadMinutes: 5,
			PublishedAt: Base.Add(-6 * time.Hour),
			UpdatedAt:   Base.Add(-6 * time.Hour),
		},
		{
			ID:          "55555555-5555-4555-8555-555555555555",
			Title:       "Flood relief effort enters second week",
			Summary:     "Aid agencies report improved access to the affected valley.",
			Category:    entity.CategoryWorld,
			Language:    entity.LanguageEnglish,
			Author:      "Omar Said",
			ReadMinutes: 4,
			Views:       45,
			PublishedAt: Base.Add(-24 * time.Hour),
			UpdatedAt:   Base.Add(-24 * time.Hour),
		},
		{
			ID:          "66666666-6666-4666-8666-666666666666",
			Title:       "منتخب الشباب يتأهل إلى كأس العالم",
			Summary:     "تأهل تاريخي بعد فوز مستحق في التصفيات.",
			Category:    entity.CategorySports,
			Language:    entity.LanguageArabic,
			Author:      "قسم الرياضة",
			ReadMinutes: 3,
			PublishedAt: Base.Add(-48 * time.Hour),
			UpdatedAt:   Base.Add(-48 * time.Hour),
		},
	}
}

// ByLanguage filters the fixture set.
func ByLanguage(lang entity.Language) []*entity.Article {
	var out []*entity.Article
	for _, a := range Articles() {
		if a.Language == lang {
			out = append(out, a)
		}
	}
	return out
}
