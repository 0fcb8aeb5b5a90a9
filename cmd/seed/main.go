package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"emlak/internal/config"
	"emlak/internal/db"
	"emlak/internal/model"
	"emlak/internal/repository"
)

type seedProperty struct {
	Title        string
	Description  string
	Price        int64
	SquareMeters int
	RoomCount    string
	Floor        int
	BuildingAge  int
	Type         model.PropertyType
	Location     string
	Images       []string
}

var seedProperties = []seedProperty{
	{
		Title:        "Kadıköy Moda'da Deniz Manzaralı 3+1",
		Description:  "Moda'nın en nezih sokağında, panoramik deniz manzaralı, geniş balkonlu, lüks tadilatlı daire.",
		Price:        12500000,
		SquareMeters: 145,
		RoomCount:    "3+1",
		Floor:        4,
		BuildingAge:  15,
		Type:         model.PropertyTypeSale,
		Location:     "Moda, Kadıköy, İstanbul",
		Images: []string{
			"https://picsum.photos/id/1031/1200/800",
			"https://picsum.photos/id/1032/1200/800",
		},
	},
	{
		Title:        "Beşiktaş Çarşı'da Kiralık 1+1 Eşyalı",
		Description:  "Çarşı merkezinde, ulaşım araçlarına yürüme mesafesinde, modern eşyalı, temiz daire.",
		Price:        25000,
		SquareMeters: 65,
		RoomCount:    "1+1",
		Floor:        2,
		BuildingAge:  10,
		Type:         model.PropertyTypeRent,
		Location:     "Beşiktaş, İstanbul",
		Images: []string{
			"https://picsum.photos/id/1040/1200/800",
			"https://picsum.photos/id/1041/1200/800",
		},
	},
	{
		Title:        "Bodrum Yalıkavak'ta Müstakil Havuzlu Villa",
		Description:  "Yalıkavak Marina manzaralı, 500m2 bahçe içerisinde, özel havuzlu, 4 yatak odalı lüks villa.",
		Price:        45000000,
		SquareMeters: 320,
		RoomCount:    "4+1",
		Floor:        0,
		BuildingAge:  2,
		Type:         model.PropertyTypeSale,
		Location:     "Yalıkavak, Bodrum, Muğla",
		Images: []string{
			"https://picsum.photos/id/1043/1200/800",
			"https://picsum.photos/id/1044/1200/800",
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Admin{}, &model.Property{}, &model.Image{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	if err := seed(context.Background(), gormDB); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

// seed inserts the sample listings once; an already-populated table is left alone.
func seed(ctx context.Context, gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("properties table already has %d rows, skipping", count)
		return nil
	}

	propertyRepo := repository.NewPropertyRepository(gormDB)
	for _, sp := range seedProperties {
		property := &model.Property{
			Title:        sp.Title,
			Description:  sp.Description,
			Price:        decimal.NewFromInt(sp.Price),
			SquareMeters: sp.SquareMeters,
			RoomCount:    sp.RoomCount,
			Floor:        sp.Floor,
			BuildingAge:  sp.BuildingAge,
			Type:         sp.Type,
			Status:       model.PropertyStatusActive,
			Location:     sp.Location,
		}
		if err := propertyRepo.Create(ctx, property, sp.Images); err != nil {
			return err
		}
		log.Printf("seeded property %d: %s", property.ID, property.Title)
	}
	return nil
}
