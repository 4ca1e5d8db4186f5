package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/coffeeshop/internal/client/app"
	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/pkg/api"
)

func (c *Cli) listCommand() *cobra.Command {
	var q api.ProductQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if q.Sort != "" && q.Sort != "asc" && q.Sort != "desc" {
				return fmt.Errorf("invalid sort %q: use asc or desc", q.Sort)
			}
			return c.withApp(cmd.Context(), func(a *app.App) error {
				c.connect(cmd.Context(), a)

				page, err := a.Products.List(cmd.Context(), q)
				if err != nil {
					return err
				}
				c.printPage(page.Products, page.Info, page.Offline)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&q.Search, "search", "", "search by name or description")
	flags.StringVar(&q.Category, "category", "", "filter by category")
	flags.StringVar(&q.Sort, "sort", "", "sort by price inside category: asc or desc")
	flags.IntVar(&q.Page, "page", 0, "page number")
	flags.IntVar(&q.Limit, "limit", 0, "page size, 0 lists everything")
	return cmd
}

func (c *Cli) printPage(products []*models.CachedProduct, info models.PageInfo, offline bool) {
	if len(products) == 0 {
		c.io.Println("No products found.")
		return
	}

	category := ""
	for _, p := range products {
		if p.Category != category {
			category = p.Category
			c.io.Printf("\n== %s ==\n", category)
		}
		c.io.Printf("  %-6s %-32s %7.2f%s\n", p.ID, p.Name, p.Price, productMarker(p))
	}

	c.io.Println()
	c.io.Printf("Page %d of %d, %d product(s)", info.CurrentPage, info.TotalPages, info.TotalProducts)
	if offline {
		c.io.Printf(" (from local cache)")
	}
	c.io.Println()
}

// productMarker помечает еще не подтвержденные сервером продукты
func productMarker(p *models.CachedProduct) string {
	switch {
	case p.IsOffline:
		return "  [offline]"
	case !p.IsSynced:
		return "  [pending]"
	default:
		return ""
	}
}

func (c *Cli) printProduct(p *models.CachedProduct) {
	c.io.Printf("ID:          %s%s\n", p.ID, productMarker(p))
	c.io.Printf("Name:        %s\n", p.Name)
	c.io.Printf("Category:    %s\n", p.Category)
	c.io.Printf("Price:       %.2f\n", p.Price)
	c.io.Printf("Description: %s\n", p.Description)
	if p.Image != "" {
		c.io.Printf("Image:       %s\n", p.Image)
	}
}

func (c *Cli) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				c.connect(cmd.Context(), a)

				p, _, err := a.Products.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				c.printProduct(p)
				return nil
			})
		},
	}
}

func (c *Cli) addCommand() *cobra.Command {
	var in api.ProductInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				c.connect(cmd.Context(), a)

				p, offline, err := a.Products.Add(cmd.Context(), in)
				if err != nil {
					return err
				}
				c.io.Println("✓ Product added")
				c.printProduct(p)
				c.offlineNote(offline)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&in.Name, "name", "", "product name")
	flags.StringVar(&in.Category, "category", "", "product category")
	flags.StringVar(&in.Description, "description", "", "product description")
	flags.StringVar(&in.Image, "image", "", "image path")
	flags.Float64Var(&in.Price, "price", 0, "price")
	return cmd
}

func (c *Cli) updateCommand() *cobra.Command {
	var in api.ProductInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update product fields given as flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// В patch попадают только явно переданные флаги
			var patch api.ProductPatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &in.Name
			}
			if flags.Changed("category") {
				patch.Category = &in.Category
			}
			if flags.Changed("description") {
				patch.Description = &in.Description
			}
			if flags.Changed("image") {
				patch.Image = &in.Image
			}
			if flags.Changed("price") {
				patch.Price = &in.Price
			}

			return c.withApp(cmd.Context(), func(a *app.App) error {
				c.connect(cmd.Context(), a)

				p, offline, err := a.Products.Update(cmd.Context(), args[0], patch)
				if err != nil {
					return err
				}
				c.io.Println("✓ Product updated")
				if p != nil {
					c.printProduct(p)
				}
				c.offlineNote(offline)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&in.Name, "name", "", "new name")
	flags.StringVar(&in.Category, "category", "", "new category")
	flags.StringVar(&in.Description, "description", "", "new description")
	flags.StringVar(&in.Image, "image", "", "new image path")
	flags.Float64Var(&in.Price, "price", 0, "new price")
	return cmd
}

func (c *Cli) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				c.connect(cmd.Context(), a)

				offline, err := a.Products.Delete(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				c.io.Printf("✓ Product %s deleted\n", args[0])
				c.offlineNote(offline)
				return nil
			})
		},
	}
}

func (c *Cli) categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				c.connect(cmd.Context(), a)

				categories, offline, err := a.Products.Categories(cmd.Context())
				if err != nil {
					return err
				}
				if len(categories) == 0 {
					if offline {
						return errors.New("categories are not cached yet, connect to the server once")
					}
					c.io.Println("No categories.")
					return nil
				}
				c.io.Println(strings.Join(categories, "\n"))
				return nil
			})
		},
	}
}
