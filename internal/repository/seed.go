package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sefazor/ttravel-backend/internal/models"
)

const (
	domesticImageURL      = "https://images.unsplash.com/photo-1524492412937-b28074a5d7da?w=400&h=200&fit=crop"
	internationalImageURL = "https://images.unsplash.com/photo-1436491865332-7a61a109cc05?w=400&h=200&fit=crop"
)

var DefaultContent = []models.ContentEntry{
	{Key: "site.name", Value: "TTravel Hospitality"},
	{Key: "hero.title", Value: "Explore the World with TTRAVE"},
	{Key: "hero.subtitle", Value: "Book your next adventure with us!"},
	{Key: "company.name", Value: "TTravel Hospitality"},
	{Key: "contact.phone", Value: "+91 8100331032"},
	{Key: "contact.email", Value: "ttrave.travelagency@gmail.com"},
	{Key: "contact.address", Value: "B-12, Shop No. - 111/19, Saptaparni Market, Kalyani Central Park - ward no. 11, Nadia- 741235, West Bengal, India"},
	{Key: "social.facebook", Value: "#"},
	{Key: "social.instagram", Value: "#"},
	{Key: "social.linkedin", Value: "#"},
	{Key: "social.twitter", Value: "#"},
	{Key: "inquiry.url", Value: "https://forms.gle/your-inquiry-form-id"},
	{Key: "inquiry.button.text", Value: "Enquire Now"},

	{Key: "about.hero.title", Value: "About TTravel Hospitality"},
	{Key: "about.hero.subtitle", Value: "Your trusted partner for unforgettable travel experiences"},
	{Key: "about.who.title", Value: "Who We Are"},
	{Key: "about.who.description1", Value: "TTravel Hospitality is a premier travel agency dedicated to creating extraordinary travel experiences. With over a decade of expertise in the travel industry, we specialize in both domestic and international travel packages that cater to every traveler's dreams."},
	{Key: "about.who.description2", Value: "Our team of experienced travel consultants works tirelessly to ensure that every journey you take with us is seamless, memorable, and perfectly tailored to your preferences. From cultural expeditions to adventure tours, we have something special for everyone."},
	{Key: "about.who.image", Value: "https://images.unsplash.com/photo-1551632811-561732d1e306?w=600&h=400&fit=crop"},
	{Key: "about.values.title", Value: "Our Core Values"},
	{Key: "about.mission.title", Value: "Our Mission"},
	{Key: "about.mission.description", Value: "To provide exceptional travel experiences that create lasting memories and foster cultural understanding through personalized service and attention to detail."},
	{Key: "about.vision.title", Value: "Our Vision"},
	{Key: "about.vision.description", Value: "To be the leading travel agency that connects people with the world's most beautiful destinations while promoting sustainable and responsible tourism practices."},
	{Key: "about.values.description.title", Value: "Our Values"},
	{Key: "about.values.description", Value: "Integrity, Excellence, Customer Focus, Innovation, and Sustainability guide every decision we make and every service we provide to our valued customers."},
}

// Indian states and union territories.
var domesticDestinations = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Goa",
	"Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala",
	"Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland",
	"Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu", "Telangana",
	"Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal", "Andaman and Nicobar Islands",
	"Chandigarh", "Dadra and Nagar Haveli and Daman and Diu", "Delhi",
	"Jammu and Kashmir", "Ladakh", "Lakshadweep", "Puducherry",
}

var internationalDestinations = []string{
	"France", "United Kingdom", "Italy", "Switzerland", "Japan", "Thailand",
	"Australia", "New Zealand", "Singapore", "Malaysia", "Dubai", "Turkey",
}

type samplePackage struct {
	destination string
	pkg         models.Package
}

var samplePackages = []samplePackage{
	{
		destination: "Andhra Pradesh",
		pkg: models.Package{
			Name:           "Golden Triangle Tour",
			Description:    "Discover India's hidden gems with hand-picked tour packages across the country.",
			ImageURL:       "https://images.unsplash.com/photo-1564507592333-c60657eea523?w=400&h=300&fit=crop",
			PricePerPerson: "₹25,000",
			Duration:       "6 Days / 5 Nights",
			Highlights:     []string{"Visit to Taj Mahal", "Red Fort Delhi", "Amber Fort Jaipur"},
			Location:       "Delhi - Agra - Jaipur",
			BuyNowURL:      "https://forms.gle/golden-triangle-tour-booking",
			IsFeatured:     true,
			IsActive:       true,
		},
	},
	{
		destination: "Rajasthan",
		pkg: models.Package{
			Name:           "Royal Rajasthan Experience",
			Description:    "Experience the royal heritage and culture of Rajasthan with our premium packages.",
			ImageURL:       "https://images.unsplash.com/photo-1518548419970-58e3b4079ab2?w=400&h=300&fit=crop",
			PricePerPerson: "₹35,000",
			Duration:       "8 Days / 7 Nights",
			Highlights:     []string{"City Palace Udaipur", "Mehrangarh Fort Jodhpur", "Desert Safari Jaisalmer"},
			Location:       "Jaipur - Udaipur - Jodhpur - Jaisalmer",
			BuyNowURL:      "https://forms.gle/royal-rajasthan-booking",
			IsActive:       true,
		},
	},
	{
		destination: "France",
		pkg: models.Package{
			Name:           "Paris & French Riviera",
			Description:    "Explore the romance of Paris and the glamour of the French Riviera in this premium package.",
			ImageURL:       "https://images.unsplash.com/photo-1502602898536-47ad22581b52?w=400&h=300&fit=crop",
			PricePerPerson: "€2,500",
			Duration:       "10 Days / 9 Nights",
			Highlights:     []string{"Eiffel Tower Tour", "Louvre Museum", "Nice & Cannes", "Monaco Grand Prix Circuit"},
			Location:       "Paris - Nice - Cannes - Monaco",
			BuyNowURL:      "https://forms.gle/paris-riviera-booking",
			IsFeatured:     true,
			IsActive:       true,
		},
	},
}

var whitespace = regexp.MustCompile(`\s+`)

// PlaceholderFormURL is the enquiry form link seeded for a destination name.
func PlaceholderFormURL(name string) string {
	return "https://forms.gle/placeholder-" + whitespace.ReplaceAllString(strings.ToLower(name), "-")
}

// Seed fills an empty store with the admin account, default site copy,
// destinations and sample packages. Rows that already exist (matched by
// username, content key, destination name or package name) are left alone,
// so Seed is safe to run on every start.
func Seed(ctx context.Context, store *Store, admin models.User) error {
	if _, err := store.Users.GetByUsername(ctx, admin.Username); errors.Is(err, ErrNotFound) {
		if err := store.Users.Create(ctx, &admin); err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	if err := seedContent(ctx, store); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}

	byName, err := seedDestinations(ctx, store)
	if err != nil {
		return fmt.Errorf("seed destinations: %w", err)
	}

	if err := seedPackages(ctx, store, byName); err != nil {
		return fmt.Errorf("seed packages: %w", err)
	}
	return nil
}

func seedContent(ctx context.Context, store *Store) error {
	var missing []models.ContentEntry
	for _, entry := range DefaultContent {
		_, err := store.Content.GetByKey(ctx, entry.Key)
		switch {
		case errors.Is(err, ErrNotFound):
			missing = append(missing, entry)
		case err != nil:
			return err
		}
	}
	if len(missing) == 0 {
		return nil
	}
	_, err := store.Content.Upsert(ctx, missing)
	return err
}

func seedDestinations(ctx context.Context, store *Store) (map[string]string, error) {
	existing, err := store.Destinations.List(ctx, models.DestinationFilter{IncludeInactive: true})
	if err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(existing))
	for _, d := range existing {
		byName[d.Name] = d.ID
	}

	// Distinct timestamps keep listings in seed order on databases that
	// sort by created_at.
	base := time.Now()
	add := func(i int, name string, typ models.DestinationType, imageURL string) error {
		if _, ok := byName[name]; ok {
			return nil
		}
		d := models.Destination{
			Name:      name,
			Type:      typ,
			ImageURL:  imageURL,
			FormURL:   PlaceholderFormURL(name),
			Icon:      models.DefaultDestinationIcon,
			IsActive:  true,
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		}
		if err := store.Destinations.Create(ctx, &d); err != nil {
			return err
		}
		byName[name] = d.ID
		return nil
	}

	for i, name := range domesticDestinations {
		if err := add(i, name, models.DestinationDomestic, domesticImageURL); err != nil {
			return nil, err
		}
	}
	offset := len(domesticDestinations)
	for i, name := range internationalDestinations {
		if err := add(offset+i, name, models.DestinationInternational, internationalImageURL); err != nil {
			return nil, err
		}
	}
	return byName, nil
}

func seedPackages(ctx context.Context, store *Store, destinations map[string]string) error {
	existing, err := store.Packages.List(ctx, models.PackageFilter{IncludeInactive: true})
	if err != nil {
		return err
	}
	names := make(map[string]bool, len(existing))
	for _, p := range existing {
		names[p.Name] = true
	}

	base := time.Now()
	for i, sample := range samplePackages {
		destinationID, ok := destinations[sample.destination]
		if !ok || names[sample.pkg.Name] {
			continue
		}
		p := sample.pkg.Clone()
		p.DestinationID = destinationID
		p.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		if err := store.Packages.Create(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}
