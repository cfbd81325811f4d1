// Package seed populates an empty store with sample bilingual articles and,
// optionally, an admin account. It goes through the usecase layer so the
// same code seeds both the in-memory and PostgreSQL stores.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nashra/internal/domain/entity"
	artUC "nashra/internal/usecase/article"
	userUC "nashra/internal/usecase/user"
)

// Seeder inserts the sample data set.
type Seeder struct {
	Articles *artUC.Service
	Users    *userUC.Service
	Logger   *slog.Logger

	// AdminUsername and AdminPassword create an initial admin account when
	// both are set. An existing account with the same username is left alone.
	AdminUsername string
	AdminPassword string
}

// Run seeds the store. Articles are only inserted when the store is empty so
// restarts never duplicate data.
func (s *Seeder) Run(ctx context.Context) error {
	result, err := s.Articles.List(ctx, artUC.ListQuery{Limit: 1})
	if err != nil {
		return fmt.Errorf("check store: %w", err)
	}

	if result.Pagination.Total > 0 {
		s.Logger.Info("store already populated, skipping article seed",
			slog.Int64("articles", result.Pagination.Total))
	} else {
		for _, in := range sampleArticles() {
			if _, err := s.Articles.Create(ctx, in); err != nil {
				return fmt.Errorf("seed article %q: %w", in.Title, err)
			}
		}
		s.Logger.Info("seeded sample articles", slog.Int("count", len(sampleArticles())))
	}

	if s.AdminUsername != "" && s.AdminPassword != "" {
		_, err := s.Users.CreateUser(ctx, entity.NewUserInput{
			Username: s.AdminUsername,
			Password: s.AdminPassword,
		})
		switch {
		case err == nil:
			s.Logger.Info("seeded admin user", slog.String("username", s.AdminUsername))
		case errors.Is(err, userUC.ErrDuplicateUsername):
			s.Logger.Info("admin user already exists", slog.String("username", s.AdminUsername))
		default:
			return fmt.Errorf("seed admin user: %w", err)
		}
	}

	return nil
}

func strptr(s string) *string { return &s }

func timeptr(t time.Time) *time.Time { return &t }

// sampleArticles returns three English and three Arabic articles spread over
// the last day so the default ordering is visible immediately.
func sampleArticles() []entity.NewArticleInput {
	now := time.Now().UTC()

	return []entity.NewArticleInput{
		{
			Title:       "Global markets rally as trade talks conclude",
			Summary:     "Stock indices climbed after negotiators announced a new trade framework.",
			Content:     strptr("Markets across three continents closed higher on Thursday after trade negotiators announced a framework agreement covering tariffs and digital goods."),
			Category:    entity.CategoryBusiness,
			Language:    entity.LanguageEnglish,
			Author:      "Lina Haddad",
			ReadMinutes: 4,
			PublishedAt: timeptr(now.Add(-2 * time.Hour)),
		},
		{
			Title:       "Researchers unveil low-power desalination method",
			Summary:     "A new membrane design cuts the energy cost of producing fresh water.",
			Content:     strptr("A research team presented a membrane that halves the energy needed for seawater desalination, a development with immediate relevance for arid regions."),
			Category:    entity.CategoryTechnology,
			Language:    entity.LanguageEnglish,
			Author:      "Omar Said",
			ReadMinutes: 6,
			PublishedAt: timeptr(now.Add(-8 * time.Hour)),
		},
		{
			Title:       "National team advances to continental final",
			Summary:     "A stoppage-time goal sealed the semifinal win.",
			Category:    entity.CategorySports,
			Language:    entity.LanguageEnglish,
			Author:      "Sports Desk",
			IsBreaking:  true,
			PublishedAt: timeptr(now.Add(-30 * time.Minute)),
		},
		{
			Title:       "قمة إقليمية لبحث التعاون الاقتصادي",
			Summary:     "يجتمع القادة لمناقشة اتفاقيات التجارة والطاقة المشتركة.",
			Content:     strptr("انطلقت أعمال القمة الإقليمية بمشاركة واسعة لبحث ملفات التجارة والطاقة والبنية التحتية المشتركة بين دول المنطقة."),
			Category:    entity.CategoryPolitics,
			Language:    entity.LanguageArabic,
			Author:      "سارة المنصور",
			ReadMinutes: 5,
			PublishedAt: timeptr(now.Add(-4 * time.Hour)),
		},
		{
			Title:       "إطلاق منصة رقمية جديدة للخدمات الحكومية",
			Summary:     "المنصة الجديدة تتيح إنجاز المعاملات إلكترونياً على مدار الساعة.",
			Category:    entity.CategoryTechnology,
			Language:    entity.LanguageArabic,
			Author:      "قسم التقنية",
			ReadMinutes: 3,
			PublishedAt: timeptr(now.Add(-12 * time.Hour)),
		},
		{
			Title:       "عاجل: انقطاع واسع للكهرباء في العاصمة",
			Summary:     "فرق الطوارئ تعمل على إعادة التيار بعد عطل في محطة التحويل الرئيسية.",
			Category:    entity.CategoryWorld,
			Language:    entity.LanguageArabic,
			Author:      "مراسل الشؤون المحلية",
			IsBreaking:  true,
			PublishedAt: timeptr(now.Add(-10 * time.Minute)),
		},
	}
}
