package dto

// SaveItemRequest submit del formulario: campos crudos tal como los tipea
// el usuario, más el flag de confirmación (requerido solo al actualizar).
type SaveItemRequest struct {
	Category       string `json:"category"`
	Name           string `json:"name"`
	Size           string `json:"size"`
	Price          string `json:"price"`
	Cost           string `json:"cost"`
	AmountStock    string `json:"amountStock"`
	RemainingStock string `json:"remainingStock"`
	Confirm        bool   `json:"confirm"`
}

// SaveItemResponse resultado de un submit aceptado.
type SaveItemResponse struct {
	ID      string `json:"id"`
	Created bool   `json:"created"`
}

// ItemResponse un ítem del menú. Price y Cost viajan como strings fijados
// a dos decimales, igual que se muestran.
type ItemResponse struct {
	ID             string `json:"id"`
	Category       string `json:"category"`
	Name           string `json:"name"`
	Size           string `json:"size"`
	Price          string `json:"price"`
	Cost           string `json:"cost"`
	AmountStock    int    `json:"amountStock"`
	RemainingStock int    `json:"remainingStock"`
	Selected       bool   `json:"selected"`
}

// EditFormResponse estado del formulario tras entrar en modo edición.
type EditFormResponse struct {
	Editing        bool   `json:"editing"`
	ID             string `json:"id"`
	Category       string `json:"category"`
	Name           string `json:"name"`
	Size           string `json:"size"`
	Price          string `json:"price"`
	Cost           string `json:"cost"`
	AmountStock    string `json:"amountStock"`
	RemainingStock string `json:"remainingStock"`
}

// CatalogResponse categorías válidas y opciones de tamaño por categoría.
type CatalogResponse struct {
	Categories  []string            `json:"categories"`
	SizeOptions map[string][]string `json:"sizeOptions"`
}
