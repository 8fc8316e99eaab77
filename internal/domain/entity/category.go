package entity

// Categorías del menú (conjunto cerrado).
const (
	CategoryAppetizers = "Appetizers"
	CategoryMainCourse = "Main Course"
	CategoryDesserts   = "Desserts"
	CategoryBeverages  = "Beverages"
)

// Categories lista las categorías válidas en el orden en que se muestran en el formulario.
var Categories = []string{
	CategoryAppetizers,
	CategoryMainCourse,
	CategoryDesserts,
	CategoryBeverages,
}

// sizeOptions: opciones de tamaño por categoría.
var sizeOptions = map[string][]string{
	CategoryAppetizers: {"Small Plate", "Regular Plate", "Large Plate"},
	CategoryMainCourse: {"Half Portion", "Regular Portion", "Family Size"},
	CategoryDesserts:   {"Single Serving", "Shareable", "Large (for group)"},
	CategoryBeverages:  {"Regular", "Medium", "Large"},
}

// ValidCategory indica si la categoría pertenece al conjunto cerrado.
func ValidCategory(category string) bool {
	_, ok := sizeOptions[category]
	return ok
}

// SizeOptions devuelve las opciones de tamaño de una categoría (nil si no existe).
func SizeOptions(category string) []string {
	return sizeOptions[category]
}

// ValidSize indica si size es una opción válida para la categoría dada.
func ValidSize(category, size string) bool {
	for _, s := range sizeOptions[category] {
		if s == size {
			return true
		}
	}
	return false
}
