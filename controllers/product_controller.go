package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Githubuser289/Calories-BE/models"
	"github.com/Githubuser289/Calories-BE/services"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// productView keeps the wire format of the shared catalog: a 5-element
// restriction array indexed by blood type, index 0 unused.
type productView struct {
	Categories           string  `json:"categories"`
	Weight               float64 `json:"weight"`
	Title                string  `json:"title"`
	Calories             float64 `json:"calories"`
	GroupBloodNotAllowed [5]bool `json:"groupBloodNotAllowed"`
}

// List godoc
// @Summary      List the product catalog
// @Tags         products
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /products [get]
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.products.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	views := make([]productView, 0, len(products))
	for i := range products {
		views = append(views, toProductView(&products[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

func toProductView(p *models.Product) productView {
	return productView{
		Categories: p.Categories,
		Weight:     p.Weight,
		Title:      p.Title,
		Calories:   p.Calories,
		GroupBloodNotAllowed: [5]bool{
			false,
			p.NotAllowedType1,
			p.NotAllowedType2,
			p.NotAllowedType3,
			p.NotAllowedType4,
		},
	}
}
