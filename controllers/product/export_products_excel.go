package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/tealeg/xlsx"
)

// Column order shared by export and import.
var excelHeaders = []string{
	"ID", "Name", "Description", "Price", "Stock", "CategoryID", "Slug", "Image",
}

// GET /productos-excel/
func ExportProductsToExcel(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.Products.GetAll(c.Request.Context(), nil)
		if err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Productos")
		if err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range excelHeaders {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetString(p.Price.StringFixed(models.PriceDecimals))
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.CategoryID)
			row.AddCell().SetValue(p.Slug)
			row.AddCell().SetValue(p.Image)
		}

		c.Header("Content-Disposition", "attachment; filename=productos.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")
		c.Status(http.StatusOK)

		if err := file.Write(c.Writer); err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
	}
}
