package store

import (
	"time"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
)

// Seed loads the demo fixtures the dashboard ships with. Collections are
// replaced wholesale, so calling it twice does not duplicate data.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = []models.Student{
		{ID: "1", Name: "Ana Oliveira", Phone: "11988887777", Plan: "Mensal", DueDate: date(2026, 2, 15), Status: models.StatusLate},
		{ID: "2", Name: "Bruno Gomes", Phone: "11977776666", Plan: "Semestral", DueDate: date(2026, 3, 10), Status: models.StatusActive},
		{ID: "3", Name: "Carla Dias", Phone: "11966665555", Plan: "Anual", DueDate: date(2026, 3, 5), Status: models.StatusActive},
		{ID: "4", Name: "Diego Souza", Phone: "11955554444", Plan: "Mensal", DueDate: date(2026, 1, 20), Status: models.StatusLate},
	}

	// Newest first, like every freshly recorded transaction.
	s.transactions = []models.Transaction{
		{ID: 1, Kind: models.KindInflow, Category: "Mensalidade", Description: "Ana Oliveira", Amount: 120, Date: date(2026, 2, 19)},
		{ID: 2, Kind: models.KindOutflow, Category: "Aluguel", Description: "Imobiliária Central", Amount: 3500, Date: date(2026, 2, 15)},
		{ID: 3, Kind: models.KindInflow, Category: "Loja", Description: "Venda de Whey Protein", Amount: 189, Date: date(2026, 2, 19)},
		{ID: 4, Kind: models.KindOutflow, Category: "Energia", Description: "Enel Distribuição", Amount: 1240, Date: date(2026, 2, 10)},
		{ID: 5, Kind: models.KindInflow, Category: "Matrícula", Description: "Carlos Eduardo", Amount: 50, Date: date(2026, 2, 18)},
	}
	s.nextTxID = 6

	s.products = []models.Product{
		{ID: "1", Name: "Whey Protein Isolado 900g", Category: "Suplementos", Price: 189.90, Stock: 15, MinStock: 5, ImageURL: "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=200&h=200&fit=crop"},
		{ID: "2", Name: "Creatina Monohidratada 300g", Category: "Suplementos", Price: 89.90, Stock: 3, MinStock: 10, ImageURL: "https://images.unsplash.com/photo-1546483875-ad9014c88eba?w=200&h=200&fit=crop"},
		{ID: "3", Name: "Pré-Treino C4 200g", Category: "Performance", Price: 145.00, Stock: 8, MinStock: 5, ImageURL: "https://images.unsplash.com/photo-1574680096145-d05b474e2155?w=200&h=200&fit=crop"},
		{ID: "4", Name: "BCAA 2400 120 Cáps", Category: "Recuperação", Price: 59.90, Stock: 20, MinStock: 8, ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=200&h=200&fit=crop"},
	}

	s.workouts = []models.Workout{
		{
			ID: "1", Title: "Hipertrofia - Peito & Tríceps", Level: "Intermediário", Duration: "60 min", Category: "Musculação",
			Exercises: []models.Exercise{
				{ID: "e1", Name: "Supino Reto com Barra", Sets: 4, Reps: "10-12", Rest: "60s", MediaType: "video", MediaURL: "https://images.unsplash.com/photo-1651346847980-ab1c883e8cc8?w=800&q=80"},
				{ID: "e2", Name: "Crucifixo Inclinado", Sets: 3, Reps: "12", Rest: "45s", MediaType: "gif", MediaURL: "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=800&q=80"},
				{ID: "e3", Name: "Tríceps Pulley", Sets: 4, Reps: "15", Rest: "30s", MediaType: "video", MediaURL: "https://images.unsplash.com/photo-1590239068178-34fd62908c65?w=800&q=80"},
			},
		},
		{
			ID: "2", Title: "Leg Day - Quadríceps & Glúteos", Level: "Avançado", Duration: "75 min", Category: "Musculação",
			Exercises: []models.Exercise{
				{ID: "e4", Name: "Agachamento Livre", Sets: 4, Reps: "8-10", Rest: "90s", MediaType: "video", MediaURL: "https://images.unsplash.com/photo-1585484764802-387ea30e8432?w=800&q=80"},
				{ID: "e5", Name: "Leg Press 45º", Sets: 4, Reps: "12", Rest: "60s", MediaType: "gif", MediaURL: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=800&q=80"},
			},
		},
		{
			ID: "3", Title: "Costas & Bíceps", Level: "Intermediário", Duration: "60 min", Category: "Musculação",
			Exercises: []models.Exercise{
				{ID: "e6", Name: "Rosca Direta W", Sets: 3, Reps: "12", Rest: "45s", MediaType: "video", MediaURL: "https://images.unsplash.com/photo-1704223523183-cc0ef35cb671?w=800&q=80"},
				{ID: "e7", Name: "Remada Curvada", Sets: 4, Reps: "10", Rest: "60s", MediaType: "video", MediaURL: "https://images.unsplash.com/photo-1558611848-73f7eb4001a1?w=800&q=80"},
			},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
