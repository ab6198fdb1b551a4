package generator

// Catálogos estáticos con los que se muestrean los datos demo. Separados de la
// lógica de generación para poder ajustarlos sin tocar los generadores.

var businessTypes = []string{
	"Supermercado", "Farmacia", "Ferretería", "Librería",
	"Tienda de Electrónicos", "Boutique", "Almacén Mayorista", "Distribuidora",
}

var industries = []string{
	"Retail", "Farmacéutico", "Construcción", "Educación",
	"Tecnología", "Moda", "Mayorista", "Distribución",
}

var cities = []string{
	"Medellín", "Bogotá", "Cali", "Barranquilla",
	"Cartagena", "Bucaramanga", "Pereira", "Manizales",
}

var regions = []string{
	"Antioquia", "Cundinamarca", "Valle del Cauca", "Atlántico",
	"Bolívar", "Santander", "Risaralda", "Caldas",
}

var companySizes = []string{"Pequeña", "Mediana", "Grande"}

// Nombres comerciales por tipo de negocio.
var companyNamesByType = map[string][]string{
	"Supermercado":           {"MercaFresh", "SuperCompras", "AlimentosMás", "FreshMarket"},
	"Farmacia":               {"FarmaVida", "SaludPlus", "MediCare", "FarmaBienestar"},
	"Ferretería":             {"FerreTotal", "ConstruMax", "HerramientasPlus", "FerreHogar"},
	"Librería":               {"LibrosMundo", "PapeleríaTotal", "EducaLibros", "LeeríaMás"},
	"Tienda de Electrónicos": {"TechnoStore", "ElectroMax", "DigitalWorld", "TecnologíaPlus"},
	"Boutique":               {"ModaChic", "EstiloUnico", "TrendyFashion", "BellaRopa"},
}

var genericCompanyNames = []string{
	"ComercialTotal", "DistribuMax", "MayoristaPlus", "SuministrosGenerales",
}

// productCategory agrupa los datos de muestreo de una categoría de catálogo.
type productCategory struct {
	Products  []string
	PriceMin  int64 // COP
	PriceMax  int64
	CostMin   float64 // fracción del precio
	CostMax   float64
	Suppliers []string
}

var productCategories = map[string]productCategory{
	"Electrónicos": {
		Products: []string{
			"Smartphone Samsung", "iPhone", "Laptop HP", "Laptop Dell", "Tablet Android",
			"Smart TV 43\"", "Smart TV 55\"", "Auriculares Bluetooth", "Cargador Universal",
			"Mouse Inalámbrico", "Teclado Mecánico", "Monitor 24\"", "Parlante Bluetooth",
			"Cámara Digital", "Consola Gaming",
		},
		PriceMin: 150_000, PriceMax: 3_500_000,
		CostMin: 0.6, CostMax: 0.8,
		Suppliers: []string{"TechDistributor", "ElectroImport", "DigitalSupply", "TechWorld"},
	},
	"Ropa": {
		Products: []string{
			"Camiseta Polo", "Jean Clásico", "Vestido Casual", "Chaqueta Deportiva",
			"Zapatos Casuales", "Zapatillas Deportivas", "Camisa Formal", "Pantalón Formal",
			"Blusa Mujer", "Sudadera", "Short Deportivo", "Falda", "Bufanda", "Gorra",
		},
		PriceMin: 25_000, PriceMax: 350_000,
		CostMin: 0.4, CostMax: 0.6,
		Suppliers: []string{"ModaImport", "TextilSupply", "FashionDist", "RopaTotal"},
	},
	"Alimentos": {
		Products: []string{
			"Arroz Premium 1kg", "Aceite Vegetal 1L", "Azúcar Blanca 1kg", "Sal Marina 500g",
			"Pasta Integral 500g", "Cereal Granola", "Leche Entera 1L", "Yogurt Natural",
			"Pan Integral", "Galletas Avena", "Café Premium 250g", "Té Verde", "Miel Natural",
		},
		PriceMin: 3_500, PriceMax: 45_000,
		CostMin: 0.7, CostMax: 0.85,
		Suppliers: []string{"AlimentosDist", "NutriSupply", "FoodImport", "AgriDistributor"},
	},
	"Hogar": {
		Products: []string{
			"Detergente Líquido 1L", "Jabón en Barra", "Papel Higiénico 12u", "Servilletas",
			"Ambientador", "Limpiador Multiusos", "Escoba", "Trapero", "Balde Plástico",
			"Toalla Baño", "Sábanas Queen", "Almohada Memory", "Cortina Baño",
		},
		PriceMin: 8_000, PriceMax: 120_000,
		CostMin: 0.5, CostMax: 0.7,
		Suppliers: []string{"HogarSupply", "CleanDistributor", "HomeImport", "DomesticSupply"},
	},
	"Salud": {
		Products: []string{
			"Acetaminofén 500mg", "Ibuprofeno 400mg", "Vitamina C", "Alcohol Antiséptico",
			"Vendas Elásticas", "Termómetro Digital", "Mascarillas N95", "Gel Antibacterial",
			"Protector Solar SPF50", "Shampoo Anticaspa", "Crema Hidratante", "Suero Oral",
		},
		PriceMin: 12_000, PriceMax: 85_000,
		CostMin: 0.6, CostMax: 0.75,
		Suppliers: []string{"FarmaDistributor", "HealthSupply", "MediImport", "SaludTotal"},
	},
	"Construcción": {
		Products: []string{
			"Cemento Gris 50kg", "Arena Fina m³", "Grava m³", "Ladrillo Común u100",
			"Varilla 12mm 6m", "Alambre Galvanizado", "Clavos 2\" 1kg", "Tornillos Varios",
			"Pintura Blanca 1gal", "Brocha 4\"", "Rodillo", "Tubo PVC 4\" 6m", "Llave Agua",
		},
		PriceMin: 15_000, PriceMax: 280_000,
		CostMin: 0.65, CostMax: 0.8,
		Suppliers: []string{"ConstruMax", "MaterialesPro", "FerreDistribuidor", "BuildSupply"},
	},
	"Oficina": {
		Products: []string{
			"Papel Bond A4 500h", "Bolígrafos Azul 12u", "Lápices HB 12u", "Marcadores",
			"Carpetas Manila", "Archivador AZ", "Calculadora Básica", "Grapadora",
			"Perforadora", "Pegamento", "Cinta Adhesiva", "Clips Metálicos", "Post-it",
		},
		PriceMin: 2_500, PriceMax: 65_000,
		CostMin: 0.5, CostMax: 0.65,
		Suppliers: []string{"OfficeSupply", "PapeleríaDist", "EducaImport", "OfficeMax"},
	},
}

// Orden fijo de categorías para repartir el catálogo de forma determinista.
var categoryOrder = []string{
	"Electrónicos", "Ropa", "Alimentos", "Hogar", "Salud", "Construcción", "Oficina",
}

var productVariations = []string{"Premium", "Económico", "Deluxe", "Básico", "Pro"}

// Tipos de almacén según el tipo de negocio.
var warehouseTypesByBusiness = map[string][]string{
	"Supermercado":           {"Almacén Principal", "Bodega Refrigerados", "Depósito Secos"},
	"Farmacia":               {"Almacén Medicamentos", "Bodega General", "Refrigerados"},
	"Ferretería":             {"Bodega Principal", "Almacén Herramientas", "Depósito Materiales"},
	"Librería":               {"Almacén Libros", "Bodega Papelería", "Depósito General"},
	"Tienda de Electrónicos": {"Almacén Principal", "Bodega Accesorios", "Depósito Reparaciones"},
	"Boutique":               {"Almacén Ropa", "Bodega Temporada", "Showroom"},
	"Almacén Mayorista":      {"Bodega Principal", "Almacén A", "Almacén B", "Depósito Distribución"},
	"Distribuidora":          {"Centro Distribución", "Almacén Norte", "Almacén Sur", "Bodega Central"},
}

var streetKinds = map[string][]string{
	"Medellín":     {"Carrera", "Calle", "Transversal"},
	"Bogotá":       {"Carrera", "Calle", "Diagonal"},
	"Cali":         {"Carrera", "Calle", "Avenida"},
	"Barranquilla": {"Carrera", "Calle", "Vía"},
	"Cartagena":    {"Carrera", "Calle", "Avenida"},
	"Bucaramanga":  {"Carrera", "Calle", "Transversal"},
	"Pereira":      {"Carrera", "Calle", "Avenida"},
	"Manizales":    {"Carrera", "Calle", "Transversal"},
}

var neighborhoods = map[string][]string{
	"Medellín":     {"El Poblado", "Laureles", "Envigado", "La América", "Robledo"},
	"Bogotá":       {"Chapinero", "Zona Rosa", "Suba", "Kennedy", "Fontibón"},
	"Cali":         {"El Peñón", "San Fernando", "Granada", "Normandía", "Ciudad Jardín"},
	"Barranquilla": {"El Prado", "Alto Prado", "Villa Country", "Las Flores", "Centro"},
	"Cartagena":    {"Bocagrande", "El Laguito", "Manga", "Centro", "Pie de la Popa"},
	"Bucaramanga":  {"Cabecera", "Cañaveral", "García Rovira", "Centro", "Provenza"},
	"Pereira":      {"El Jardín", "Cuba", "Universidad", "Centro", "Pinares"},
	"Manizales":    {"La Sultana", "Versalles", "Palogrande", "Centro", "Milán"},
}

// Capacidades por tipo de negocio, en m².
var capacityRanges = map[string][2]int{
	"Supermercado":           {200, 800},
	"Farmacia":               {50, 200},
	"Ferretería":             {150, 500},
	"Librería":               {80, 300},
	"Tienda de Electrónicos": {100, 400},
	"Boutique":               {60, 250},
	"Almacén Mayorista":      {500, 2000},
	"Distribuidora":          {800, 3000},
}

// Costo operacional por m² según la ciudad, en COP.
var costPerSquareMeter = map[string]int64{
	"Bogotá": 25_000, "Medellín": 22_000, "Cali": 20_000, "Barranquilla": 18_000,
	"Cartagena": 19_000, "Bucaramanga": 16_000, "Pereira": 15_000, "Manizales": 14_000,
}

var managerNames = []string{
	"Carlos Rodríguez", "María González", "Juan Pérez", "Ana López",
	"Luis García", "Carmen Martínez", "Roberto Silva", "Patricia Herrera",
	"Miguel Torres", "Lucía Ramírez", "Fernando Castro", "Isabel Moreno",
}

var firstNames = []string{
	"Carlos", "María", "Juan", "Ana", "Luis", "Carmen", "Roberto", "Patricia",
	"Miguel", "Lucía", "Fernando", "Isabel", "Diego", "Claudia", "Andrés",
	"Mónica", "Javier", "Diana", "Ricardo", "Alejandra", "Sergio", "Natalia",
	"Óscar", "Paola", "Mauricio", "Adriana", "Gonzalo", "Cristina", "Raúl",
	"Valeria", "Esteban", "Marcela", "Tomás", "Sandra", "Nicolás", "Lorena",
}

var lastNames = []string{
	"García", "Rodríguez", "López", "Martínez", "González", "Pérez", "Sánchez",
	"Ramírez", "Torres", "Flores", "Rivera", "Gómez", "Díaz", "Vargas",
	"Castillo", "Herrera", "Mendoza", "Morales", "Jiménez", "Ruiz", "Hernández",
	"Medina", "Castro", "Ortiz", "Ramos", "Delgado", "Aguilar", "Guerrero",
	"Vega", "Romero", "Álvarez", "Muñoz", "Moreno", "Silva", "Gutiérrez",
}

var emailDomains = []string{
	"gmail.com", "hotmail.com", "yahoo.com", "outlook.com", "correo.com",
	"empresarial.com", "negocio.co", "corporativo.com",
}

// stockRange define el stock inicial y la probabilidad de que un producto de
// una categoría exista en los almacenes de un tipo de negocio.
type stockRange struct {
	Min         int
	Max         int
	Probability float64
}

// Configuración de stock por tipo de negocio y categoría; la entrada "default"
// cubre las categorías no listadas.
var stockConfig = map[string]map[string]stockRange{
	"Supermercado": {
		"Alimentos": {50, 500, 0.9},
		"Hogar":     {20, 150, 0.8},
		"Salud":     {10, 80, 0.6},
		"Oficina":   {5, 50, 0.4},
		"default":   {5, 30, 0.3},
	},
	"Farmacia": {
		"Salud":     {30, 200, 0.95},
		"Hogar":     {10, 80, 0.7},
		"Alimentos": {5, 40, 0.5},
		"default":   {2, 20, 0.2},
	},
	"Ferretería": {
		"Construcción": {20, 300, 0.9},
		"Hogar":        {15, 100, 0.8},
		"Electrónicos": {5, 50, 0.6},
		"default":      {3, 25, 0.3},
	},
	"Librería": {
		"Oficina":      {25, 200, 0.9},
		"Electrónicos": {5, 40, 0.6},
		"default":      {3, 30, 0.4},
	},
	"Tienda de Electrónicos": {
		"Electrónicos": {10, 100, 0.95},
		"Oficina":      {5, 60, 0.7},
		"default":      {2, 20, 0.3},
	},
	"Boutique": {
		"Ropa":    {15, 150, 0.9},
		"default": {2, 25, 0.2},
	},
	"Almacén Mayorista": {
		"Alimentos":    {100, 1000, 0.8},
		"Ropa":         {50, 500, 0.8},
		"Electrónicos": {30, 200, 0.7},
		"Construcción": {50, 800, 0.7},
		"Hogar":        {40, 300, 0.7},
		"default":      {20, 200, 0.6},
	},
	"Distribuidora": {
		"Alimentos":    {200, 2000, 0.9},
		"Ropa":         {100, 800, 0.8},
		"Electrónicos": {50, 400, 0.8},
		"Construcción": {80, 1200, 0.8},
		"Hogar":        {60, 500, 0.7},
		"Salud":        {40, 300, 0.7},
		"default":      {30, 300, 0.6},
	},
}

var defaultStockConfig = map[string]stockRange{
	"default": {10, 100, 0.5},
}
