package dto

// SearchRequest texto de búsqueda de la tabla.
type SearchRequest struct {
	Query string `json:"query"`
}

// PageRequest página actual de la tabla.
type PageRequest struct {
	Page int `json:"page"`
}

// SortRequest columna a ordenar (la dirección alterna sola).
type SortRequest struct {
	Column string `json:"column"`
}

// TableViewResponse la vista derivada que se renderiza: filas de la página
// actual, control de paginación, agregado global de ventas y el estado
// transitorio de UI de la sesión.
type TableViewResponse struct {
	Rows           []ItemResponse    `json:"rows"`
	Page           int               `json:"page"`
	TotalPages     int               `json:"totalPages"`
	TotalSales     string            `json:"totalSales"`
	SearchQuery    string            `json:"searchQuery"`
	SelectAll      bool              `json:"selectAll"`
	SortDirections map[string]string `json:"sortDirections"`
	Banner         string            `json:"banner,omitempty"` // último fallo de lectura, no bloqueante
}
