package database

import (
	"context"
	"log"

	"github.com/google/uuid"
)

type seedService struct {
	name, description, shortDescription string
	price                               float64
	duration, image, category           string
	featured                            bool
}

type seedProduct struct {
	name, description string
	price             float64
	image, category   string
	inStock           bool
}

type seedTestimonial struct {
	name, role, content string
	rating              int
}

// SeedIfEmpty insère le catalogue initial si la base est vierge.
// Idempotent : on ne resème jamais par-dessus des données existantes.
func SeedIfEmpty(ctx context.Context) error {
	var count int
	if err := Pool.QueryRow(ctx, "SELECT COUNT(*) FROM services").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("🌱 Base vide — insertion du catalogue initial...")

	services := []seedService{
		{"Personal Fitness Training",
			"One-on-one sessions with our certified personal trainers. Get a customised workout plan designed to help you reach your specific fitness goals, whether it's weight loss, muscle building, or improving overall health.",
			"Customised one-on-one training sessions with certified professionals.",
			45.00, "60 min", "/images/service-fitness.png", "Fitness", true},
		{"Group Fitness Classes",
			"Join our energising group classes including HIIT, Zumba, aerobics, and circuit training. Perfect for those who thrive in a motivating group environment with expert-led routines.",
			"High-energy group workouts led by expert instructors.",
			15.00, "45 min", "/images/service-group.png", "Fitness", false},
		{"Yoga & Meditation",
			"Find inner peace and flexibility with our yoga and meditation sessions. From beginner Hatha yoga to advanced Vinyasa flows, our instructors guide you through mindful practices for mental clarity and physical wellness.",
			"Mindful yoga and meditation for inner peace and flexibility.",
			25.00, "60 min", "/images/service-yoga.png", "Wellness", true},
		{"Spa & Massage Therapy",
			"Relax and rejuvenate with our premium spa treatments. Choose from Swedish massage, deep tissue therapy, hot stone treatments, and aromatherapy sessions designed to melt away stress.",
			"Premium spa treatments and therapeutic massage sessions.",
			65.00, "90 min", "/images/service-spa.png", "Wellness", true},
		{"Nutritional Counselling",
			"Work with our certified nutritionists to develop a personalised eating plan. Whether you want to lose weight, manage a health condition, or simply eat healthier, we'll guide you every step of the way.",
			"Personalised meal plans and nutritional guidance.",
			35.00, "45 min", "/images/service-nutrition.png", "Nutrition", false},
		{"Lifestyle Coaching",
			"Our certified life coaches help you set and achieve meaningful goals. From career transitions to personal development, gain the tools and strategies needed to create the life you envision.",
			"Goal-setting and personal development coaching.",
			55.00, "60 min", "/images/service-coaching.png", "Coaching", false},
	}

	for _, s := range services {
		_, err := Pool.Exec(ctx,
			`INSERT INTO services (id, name, description, short_description, price, duration, image, category, featured)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			uuid.NewString(), s.name, s.description, s.shortDescription, s.price, s.duration, s.image, s.category, s.featured)
		if err != nil {
			return err
		}
	}

	products := []seedProduct{
		{"Premium Essential Oils Set",
			"A curated collection of 6 therapeutic essential oils including lavender, eucalyptus, peppermint, tea tree, lemon, and frankincense. Perfect for aromatherapy and self-care.",
			42.00, "/images/product-oils.png", "Wellness", true},
		{"Organic Protein Blend",
			"Plant-based protein powder made from pea, rice, and hemp proteins. 25g protein per serving. Vanilla flavour. No artificial additives.",
			38.00, "/images/product-protein.png", "Nutrition", true},
		{"Premium Yoga Mat",
			"Non-slip, eco-friendly yoga mat with alignment markings. Extra thick 6mm cushioning for joint comfort. Comes with carrying strap.",
			55.00, "/images/product-yogamat.png", "Fitness", true},
		{"Organic Herbal Tea Collection",
			"A selection of 5 premium herbal teas: chamomile calm, green detox, ginger immunity, rooibos energy, and hibiscus beauty. 20 bags each.",
			28.00, "/images/product-tea.png", "Nutrition", true},
		{"Natural Skincare Set",
			"Complete organic skincare routine with cleanser, toner, serum, and moisturiser. Made with natural ingredients. Suitable for all skin types.",
			68.00, "/images/product-skincare.png", "Wellness", true},
		{"Superfood Smoothie Bowl Mix",
			"Blend of acai, spirulina, maca, and mixed berries. Just add your favourite milk and toppings for a nutritious breakfast bowl. 15 servings.",
			32.00, "/images/product-smoothie.png", "Nutrition", true},
	}

	for _, p := range products {
		_, err := Pool.Exec(ctx,
			`INSERT INTO products (id, name, description, price, image, category, in_stock)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			uuid.NewString(), p.name, p.description, p.price, p.image, p.category, p.inStock)
		if err != nil {
			return err
		}
	}

	testimonials := []seedTestimonial{
		{"Tatenda Mhizha", "Fitness Client",
			"DMAC has completely transformed my approach to health. The personal training sessions are incredible, and I've lost 15kg in just 6 months. The team truly cares about your progress.", 5},
		{"Rumbidzai Choto", "Wellness Member",
			"The yoga and spa services are world-class. I come here every week for my meditation sessions and leave feeling completely refreshed. It's my sanctuary in Harare.", 5},
		{"Farai Dube", "Nutrition Client",
			"The nutritional counselling changed my life. My energy levels are through the roof and I feel healthier than ever. The team creates plans that actually work for real Zimbabwean diets.", 5},
	}

	for _, t := range testimonials {
		_, err := Pool.Exec(ctx,
			`INSERT INTO testimonials (id, name, role, content, rating) VALUES ($1,$2,$3,$4,$5)`,
			uuid.NewString(), t.name, t.role, t.content, t.rating)
		if err != nil {
			return err
		}
	}

	log.Println("✅ Catalogue initial inséré")
	return nil
}
