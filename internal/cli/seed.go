package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terracore/terracore-site/internal/config"
	"github.com/terracore/terracore-site/internal/property"
	"github.com/terracore/terracore-site/internal/testimonial"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo listings and testimonials",
		Long:  "Insert sample properties and testimonials for local development.",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}
}

var seedProperties = []*property.Property{
	{
		Title:       "Commercial Land - Lagos",
		Type:        property.TypeForSale,
		Category:    property.CategoryLand,
		Location:    "Lekki Phase 1, Lagos",
		Size:        "2 acres",
		Price:       "₦450,000,000",
		Description: "Fenced and gated commercial plot with C of O, directly off the expressway.",
		Features:    []string{"C of O", "Fenced", "Corner piece"},
		Images:      []string{},
	},
	{
		Title:       "Warehouse Complex - Ogun",
		Type:        property.TypeForRent,
		Category:    property.CategoryIndustrial,
		Location:    "Agbara Industrial Estate, Ogun",
		Size:        "5,000 sqm",
		Price:       "₦35,000,000/year",
		Description: "Twin-bay warehouse with loading docks, office block, and dedicated transformer.",
		Features:    []string{"Loading docks", "Dedicated transformer", "24/7 security"},
		Images:      []string{},
	},
	{
		Title:       "Residential Plot - Abuja",
		Type:        property.TypeForSale,
		Category:    property.CategoryResidential,
		Location:    "Guzape District, Abuja",
		Size:        "1,200 sqm",
		Price:       "₦180,000,000",
		Description: "Serviced residential plot in a developed estate with paved roads and drainage.",
		Features:    []string{"Serviced estate", "Paved roads"},
		Images:      []string{},
	},
}

var seedTestimonials = []*testimonial.Testimonial{
	{
		Name:      "Adaeze Okafor",
		Role:      "Project Director, Stonegate Construction",
		Content:   "Their geological survey caught a fault line our previous consultants missed. Saved us from a very expensive mistake.",
		Rating:    5,
		IsVisible: true,
	},
	{
		Name:      "Ibrahim Musa",
		Role:      "Factory Owner",
		Content:   "The solar installation has run flawlessly for two years. Professional team from assessment to commissioning.",
		Rating:    5,
		IsVisible: true,
	},
	{
		Name:      "Chief Emeka Obi",
		Role:      "Land Investor",
		Content:   "Straightforward and honest about every listing. The documentation support alone was worth it.",
		Rating:    4,
		IsVisible: true,
	},
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	database, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: closing database: %v\n", cerr)
		}
	}()

	props := property.NewRepository(database)
	for _, p := range seedProperties {
		created, err := props.Insert(p)
		if err != nil {
			return fmt.Errorf("seeding property %q: %w", p.Title, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Property: %s (%s)\n", created.Title, created.ID)
	}

	testimonials := testimonial.NewRepository(database)
	for _, t := range seedTestimonials {
		created, err := testimonials.Insert(t)
		if err != nil {
			return fmt.Errorf("seeding testimonial %q: %w", t.Name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Testimonial: %s (%s)\n", created.Name, created.ID)
	}

	return nil
}
