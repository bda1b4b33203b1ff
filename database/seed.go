package database

import (
	"log"
	"os"

	"gamestore/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedAdmin creates the back-office account on first start. Username and
// password come from the environment so deployments never ship the default.
func SeedAdmin(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "xliunx"
	}

	var existing models.Admin
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := models.Admin{Username: username, Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to create admin user: %v", err)
		return
	}
	log.Println("✅ Admin user created")
}

// SeedSampleData loads demo catalog content into empty tables, mirroring the
// storefront's launch inventory. Gated behind DB_SEED.
func SeedSampleData(db *gorm.DB) {
	var gameCount int64
	db.Model(&models.Game{}).Count(&gameCount)
	if gameCount == 0 {
		games := []models.Game{
			{
				Name:          "TikTok Coins",
				NameAr:        "عملات تيك توك",
				Description:   "Buy TikTok coins to support your favorite creators",
				DescriptionAr: "اشتري عملات تيك توك لدعم المبدعين المفضلين لديك",
				ImageURL:      "https://images.unsplash.com/photo-1645109870868-e1b6f909e444",
				Prices: datatypes.NewJSONSlice([]models.PricePackage{
					{Amount: "70 عملة", Price: "5", Currency: "ريال"},
					{Amount: "350 عملة", Price: "20", Currency: "ريال"},
					{Amount: "700 عملة", Price: "35", Currency: "ريال"},
					{Amount: "1400 عملة", Price: "70", Currency: "ريال"},
				}),
				IsActive: true,
			},
			{
				Name:          "PUBG Mobile UC",
				NameAr:        "يوسي ببجي موبايل",
				Description:   "Get Unknown Cash for PUBG Mobile to buy skins and battle passes",
				DescriptionAr: "احصل على اليوسي لببجي موبايل لشراء الأسلحة والبطاقات الموسمية",
				ImageURL:      "https://images.unsplash.com/photo-1564049489314-60d154ff107d",
				Prices: datatypes.NewJSONSlice([]models.PricePackage{
					{Amount: "60 يوسي", Price: "5", Currency: "ريال"},
					{Amount: "325 يوسي", Price: "25", Currency: "ريال"},
					{Amount: "660 يوسي", Price: "50", Currency: "ريال"},
					{Amount: "1800 يوسي", Price: "100", Currency: "ريال"},
				}),
				IsActive: true,
			},
		}
		if err := db.Create(&games).Error; err != nil {
			log.Printf("❌ Failed to seed games: %v", err)
		}
	}

	var newsCount int64
	db.Model(&models.NewsItem{}).Count(&newsCount)
	if newsCount == 0 {
		news := []models.NewsItem{
			{
				Title:     "Welcome to Gaming Store 2025",
				TitleAr:   "مرحباً بكم في متجر الألعاب 2025",
				Content:   "Get the best gaming top-ups at amazing prices!",
				ContentAr: "احصل على أفضل شحنات الألعاب بأسعار مذهلة!",
				IsActive:  true,
			},
			{
				Title:     "Fast Delivery Guaranteed",
				TitleAr:   "توصيل سريع مضمون",
				Content:   "All orders processed within 5 minutes!",
				ContentAr: "جميع الطلبات تتم معالجتها خلال 5 دقائق!",
				IsActive:  true,
			},
			{
				Title:     "24/7 Customer Support",
				TitleAr:   "دعم عملاء على مدار الساعة",
				Content:   "We're here to help you anytime!",
				ContentAr: "نحن هنا لمساعدتك في أي وقت!",
				IsActive:  true,
			},
		}
		if err := db.Create(&news).Error; err != nil {
			log.Printf("❌ Failed to seed news: %v", err)
		}
	}

	var bannerCount int64
	db.Model(&models.Banner{}).Count(&bannerCount)
	if bannerCount == 0 {
		banners := []models.Banner{
			{
				Title:    "Gaming Excellence",
				TitleAr:  "تميز الألعاب",
				ImageURL: "https://images.unsplash.com/photo-1542751371-adc38448a05e",
				Link:     "#games",
				IsActive: true,
			},
			{
				Title:    "Mobile Gaming Pro",
				TitleAr:  "ألعاب الجوال المحترفة",
				ImageURL: "https://images.unsplash.com/photo-1593305841991-05c297ba4575",
				Link:     "#games",
				IsActive: true,
			},
			{
				Title:    "Ultimate Gaming Experience",
				TitleAr:  "تجربة ألعاب لا تُنسى",
				ImageURL: "https://images.unsplash.com/photo-1626686707291-7bda5c45e8a8",
				Link:     "#games",
				IsActive: true,
			},
		}
		if err := db.Create(&banners).Error; err != nil {
			log.Printf("❌ Failed to seed banners: %v", err)
		}
	}
}
