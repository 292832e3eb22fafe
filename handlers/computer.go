package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"computerstore/config"
	"computerstore/models"

	"github.com/gin-gonic/gin"
)

// GetAllComputers retrieves all computers
func GetAllComputers(c *gin.Context) {
	computers := []models.Computer{}

	rows, err := config.DB.Query(
		`SELECT id, brand, model, color, processor, ram, storage, price, category FROM computers`,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch computers"})
		return
	}
	defer rows.Close()

	for rows.Next() {
		var computer models.Computer
		err := rows.Scan(
			&computer.ID,
			&computer.Brand,
			&computer.Model,
			&computer.Color,
			&computer.Processor,
			&computer.RAM,
			&computer.Storage,
			&computer.Price,
			&computer.Category,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process computers"})
			return
		}
		computers = append(computers, computer)
	}

	c.JSON(http.StatusOK, computers)
}

// GetComputer retrieves a specific computer by ID
func GetComputer(c *gin.Context) {
	// Get computer ID from URL
	computerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || computerID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid computer ID"})
		return
	}

	var computer models.Computer
	err = config.DB.QueryRow(
		`SELECT id, brand, model, color, processor, ram, storage, price, category FROM computers WHERE id = ?`,
		computerID,
	).Scan(
		&computer.ID,
		&computer.Brand,
		&computer.Model,
		&computer.Color,
		&computer.Processor,
		&computer.RAM,
		&computer.Storage,
		&computer.Price,
		&computer.Category,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "computer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, computer)
}

// GetComputersByBrand retrieves all computers of a brand.
// An empty result is a 404, matching the by-id lookup.
func GetComputersByBrand(c *gin.Context) {
	var query models.ComputerBrandQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindingError(c, err)
		return
	}

	rows, err := config.DB.Query(
		`SELECT id, brand, model, color, processor, ram, storage, price, category FROM computers WHERE brand = ?`,
		query.Brand,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch computers"})
		return
	}
	defer rows.Close()

	computers := []models.Computer{}
	for rows.Next() {
		var computer models.Computer
		err := rows.Scan(
			&computer.ID,
			&computer.Brand,
			&computer.Model,
			&computer.Color,
			&computer.Processor,
			&computer.RAM,
			&computer.Storage,
			&computer.Price,
			&computer.Category,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process computers"})
			return
		}
		computers = append(computers, computer)
	}

	if len(computers) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "computer not found"})
		return
	}

	c.JSON(http.StatusOK, computers)
}

// CreateComputer adds a new computer
func CreateComputer(c *gin.Context) {
	var input models.ComputerInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	// Insert computer into database
	result, err := config.DB.Exec(
		`INSERT INTO computers (brand, model, color, processor, ram, storage, price, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Brand, input.Model, input.Color, input.Processor,
		input.RAM, input.Storage, input.Price, input.Category,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create computer"})
		return
	}

	computerID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get computer ID"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "computer created successfully",
		"computer_id": computerID,
	})
}

// UpdateComputer overwrites every mutable field of an existing computer
func UpdateComputer(c *gin.Context) {
	// Get computer ID from URL
	computerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || computerID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid computer ID"})
		return
	}

	var input models.ComputerInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	// Check the computer exists before writing
	var exists bool
	err = config.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM computers WHERE id = ?)`, computerID).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": "computer not found"})
		return
	}

	_, err = config.DB.Exec(
		`UPDATE computers SET brand = ?, model = ?, color = ?, processor = ?, ram = ?, storage = ?, price = ?, category = ?
		 WHERE id = ?`,
		input.Brand, input.Model, input.Color, input.Processor,
		input.RAM, input.Storage, input.Price, input.Category, computerID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update computer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "computer updated successfully"})
}

// DeleteComputer removes a specific computer
func DeleteComputer(c *gin.Context) {
	// Get computer ID from URL
	computerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || computerID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid computer ID"})
		return
	}

	var exists bool
	err = config.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM computers WHERE id = ?)`, computerID).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": "computer not found"})
		return
	}

	_, err = config.DB.Exec(`DELETE FROM computers WHERE id = ?`, computerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete computer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "computer deleted successfully"})
}
