package controllers

import (
	"bytes"
	"mime"
	"net/http"

	"Gamestore/services/export"
	"Gamestore/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Get library
// @Description Returns every game the caller has bought, with its purchase date
// @Tags library
// @Produce json
// @Success 200 {array} store.LibraryGame
// @Failure 401 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/library [get]
func GetLibrary(library Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := utils.CurrentIdentity(c)
		games, err := library.GetUserLibrary(c.Request.Context(), id)
		if err != nil {
			utils.Fail(c, err, "Failed to fetch user library")
			return
		}
		c.JSON(http.StatusOK, games)
	}
}

// @Summary Purchase history
// @Description Returns the caller's transactions, newest first, with their line items
// @Tags library
// @Produce json
// @Success 200 {array} postgres.Transaction
// @Failure 401 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/transactions [get]
func GetTransactions(library Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := utils.CurrentIdentity(c)
		transactions, err := library.GetTransactions(c.Request.Context(), id)
		if err != nil {
			utils.Fail(c, err, "Failed to fetch transactions")
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

// @Summary Export purchase history
// @Description Downloads the caller's purchase history as an Excel workbook
// @Tags library
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/transactions/export [get]
func ExportTransactions(library Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := utils.CurrentIdentity(c)
		transactions, err := library.GetTransactions(c.Request.Context(), id)
		if err != nil {
			utils.Fail(c, err, "Failed to export transactions")
			return
		}

		// Buffer the workbook so a write failure can still be reported as JSON
		var buf bytes.Buffer
		if err := export.WriteTransactionsXLSX(&buf, transactions); err != nil {
			utils.Fail(c, err, "Failed to export transactions")
			return
		}

		// Set response headers for download
		disposition := mime.FormatMediaType("attachment", map[string]string{"filename": export.Filename(id.Username)})
		c.Header("Content-Disposition", disposition)
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")
		c.Data(http.StatusOK, export.ContentType, buf.Bytes())
	}
}
