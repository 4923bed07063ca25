// Package mockdata carries the offline copy of the storefront catalog: the
// same products and categories the remote API serves, for running without a
// backend.
package mockdata

import (
	"context"
	"strings"

	"example.com/bookstore-storefront/internal/domain/catalog"
)

// Catalog implements catalog.Source from static data. List operations never
// fail.
type Catalog struct {
	products   []catalog.Product
	categories []catalog.Category
}

func New() *Catalog {
	return &Catalog{products: products, categories: categories}
}

func (c *Catalog) Products(ctx context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *Catalog) ProductsByCategory(ctx context.Context, slug string) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, 4)
	for _, p := range c.products {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *Catalog) ProductByID(ctx context.Context, id int64) (*catalog.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			cloned := p
			return &cloned, nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (c *Catalog) Search(ctx context.Context, term string) ([]catalog.Product, error) {
	term = strings.ToLower(term)
	out := make([]catalog.Product, 0)
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Author), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *Catalog) Categories(ctx context.Context) ([]catalog.Category, error) {
	out := make([]catalog.Category, len(c.categories))
	copy(out, c.categories)
	return out, nil
}

var categories = []catalog.Category{
	{ID: 1, Name: "Manga", Slug: "manga", Count: 4, Description: "Los mejores mangas japoneses"},
	{ID: 2, Name: "Novela Gráfica", Slug: "novela-grafica", Count: 4, Description: "Historias ilustradas para todas las edades"},
	{ID: 3, Name: "Fantasía", Slug: "fantasia", Count: 4, Description: "Aventuras épicas y mundos imaginarios"},
	{ID: 4, Name: "Ciencia Ficción", Slug: "ciencia-ficcion", Count: 4, Description: "Explora el futuro y lo desconocido"},
	{ID: 5, Name: "Clásicos", Slug: "clasicos", Count: 4, Description: "Literatura atemporal"},
}

var products = []catalog.Product{
	{
		ID: 1, Title: "Tokyo Ghoul Vol. 1", Author: "Sui Ishida", Price: 12.99,
		Category: "manga", CategoryID: 1,
		Image:       "https://images.unsplash.com/photo-1618519764620-7403abdbdfe9?w=400&h=600&fit=crop",
		Description: "Ken Kaneki es un joven estudiante que sufre un terrible accidente que lo transforma en un ghoul. Ahora debe luchar por sobrevivir en un mundo donde humanos y ghouls se enfrentan.",
		Stock:       15, ISBN: "978-1421580364",
	},
	{
		ID: 2, Title: "One Piece Vol. 1", Author: "Eiichiro Oda", Price: 11.99,
		Category: "manga", CategoryID: 1,
		Image:       "https://images.unsplash.com/photo-1612178537253-bccd437b730e?w=400&h=600&fit=crop",
		Description: "Monkey D. Luffy sueña con convertirse en el Rey de los Piratas. Su aventura comienza cuando come una fruta del diablo que le otorga poderes increíbles.",
		Stock:       25, ISBN: "978-1569319017",
	},
	{
		ID: 3, Title: "Attack on Titan Vol. 1", Author: "Hajime Isayama", Price: 13.99,
		Category: "manga", CategoryID: 1,
		Image:       "https://images.unsplash.com/photo-1639519681471-6a70801881b6?w=400&h=600&fit=crop",
		Description: "La humanidad vive encerrada tras enormes murallas para protegerse de los titanes. Eren Yeager presenciará un evento que cambiará su vida para siempre.",
		Stock:       20, ISBN: "978-1612620244",
	},
	{
		ID: 4, Title: "Death Note Vol. 1", Author: "Tsugumi Ohba", Price: 12.50,
		Category: "manga", CategoryID: 1,
		Image:       "https://images.unsplash.com/photo-1621351183012-e2f9972dd9bf?w=400&h=600&fit=crop",
		Description: "Light Yagami encuentra un cuaderno sobrenatural que le permite matar a cualquier persona cuyo nombre escriba en él. ¿Usará este poder para el bien o el mal?",
		Stock:       18, ISBN: "978-1421501680",
	},
	{
		ID: 5, Title: "Sandman: Preludios y Nocturnos", Author: "Neil Gaiman", Price: 16.99,
		Category: "novela-grafica", CategoryID: 2,
		Image:       "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400&h=600&fit=crop",
		Description: "Dream, el señor de los sueños, ha sido capturado y permanece prisionero durante 70 años. Al liberarse, debe recuperar su poder y reconstruir su reino.",
		Stock:       12, ISBN: "978-1401225759",
	},
	{
		ID: 6, Title: "Watchmen", Author: "Alan Moore", Price: 19.99,
		Category: "novela-grafica", CategoryID: 2,
		Image:       "https://images.unsplash.com/photo-1531259683007-016a7b628fc3?w=400&h=600&fit=crop",
		Description: "En un mundo alternativo donde los superhéroes existen, un vigilante enmascarado investiga el asesinato de uno de sus antiguos compañeros.",
		Stock:       10, ISBN: "978-1401245252",
	},
	{
		ID: 7, Title: "V de Vendetta", Author: "Alan Moore", Price: 17.99,
		Category: "novela-grafica", CategoryID: 2,
		Image:       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=600&fit=crop",
		Description: "En una Inglaterra distópica, un misterioso revolucionario conocido como 'V' lucha contra un gobierno totalitario usando tácticas terroristas.",
		Stock:       14, ISBN: "978-1401207922",
	},
	{
		ID: 8, Title: "Maus", Author: "Art Spiegelman", Price: 18.99,
		Category: "novela-grafica", CategoryID: 2,
		Image:       "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400&h=600&fit=crop",
		Description: "Una poderosa novela gráfica que narra las experiencias del autor y su padre durante el Holocausto, representando a los judíos como ratones y a los nazis como gatos.",
		Stock:       8, ISBN: "978-0141014081",
	},
	{
		ID: 9, Title: "El Nombre del Viento", Author: "Patrick Rothfuss", Price: 18.50,
		Category: "fantasia", CategoryID: 3,
		Image:       "https://images.unsplash.com/photo-1509021436665-8f07dbf5bf1d?w=400&h=600&fit=crop",
		Description: "Kvothe, un legendario héroe caído en desgracia, narra su historia desde sus días en una troupe de artistas itinerantes hasta convertirse en el mago más temido y admirado.",
		Stock:       22, ISBN: "978-0756404741",
	},
	{
		ID: 10, Title: "La Comunidad del Anillo", Author: "J.R.R. Tolkien", Price: 15.99,
		Category: "fantasia", CategoryID: 3,
		Image:       "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400&h=600&fit=crop",
		Description: "Frodo Bolsón debe destruir el Anillo Único en los fuegos del Monte del Destino para salvar la Tierra Media de la oscuridad de Sauron.",
		Stock:       30, ISBN: "978-0547928210",
	},
	{
		ID: 11, Title: "Harry Potter y la Piedra Filosofal", Author: "J.K. Rowling", Price: 14.99,
		Category: "fantasia", CategoryID: 3,
		Image:       "https://images.unsplash.com/photo-1621944190310-e3cca1564bd7?w=400&h=600&fit=crop",
		Description: "Harry Potter descubre que es un mago en su undécimo cumpleaños y es admitido en la Escuela de Magia y Hechicería de Hogwarts.",
		Stock:       35, ISBN: "978-0439708180",
	},
	{
		ID: 12, Title: "Fourth Wing", Author: "Rebecca Yarros", Price: 16.99,
		Category: "fantasia", CategoryID: 3,
		Image:       "https://images.unsplash.com/photo-1541963463532-d68292c34b19?w=400&h=600&fit=crop",
		Description: "Violet Sorrengail debía entrar al Cuadrante de los Escribas, pero su madre la obliga a unirse al Cuadrante de Jinetes, donde el entrenamiento es brutal y mortal.",
		Stock:       18, ISBN: "978-1649374042",
	},
	{
		ID: 13, Title: "Dune", Author: "Frank Herbert", Price: 22.99,
		Category: "ciencia-ficcion", CategoryID: 4,
		Image:       "https://images.unsplash.com/photo-1506880018603-83d5b814b5a6?w=400&h=600&fit=crop",
		Description: "En el desértico planeta Arrakis, única fuente de la especia melange, Paul Atreides debe enfrentar conspiraciones políticas y su destino como mesías.",
		Stock:       20, ISBN: "978-0441172719",
	},
	{
		ID: 14, Title: "Neuromante", Author: "William Gibson", Price: 17.99,
		Category: "ciencia-ficcion", CategoryID: 4,
		Image:       "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?w=400&h=600&fit=crop",
		Description: "Case, un cowboy del ciberespacio, es contratado para el último y mayor hack de su vida en una inteligencia artificial que controla el mundo.",
		Stock:       15, ISBN: "978-0441569595",
	},
	{
		ID: 15, Title: "El Juego de Ender", Author: "Orson Scott Card", Price: 16.50,
		Category: "ciencia-ficcion", CategoryID: 4,
		Image:       "https://images.unsplash.com/photo-1516339901601-2e1b62dc0c45?w=400&h=600&fit=crop",
		Description: "Ender Wiggin, un niño genio, es reclutado por la Academia de Batalla para prepararse para una invasión alienígena que amenaza a la humanidad.",
		Stock:       25, ISBN: "978-0812550702",
	},
	{
		ID: 16, Title: "Ready Player One", Author: "Ernest Cline", Price: 15.99,
		Category: "ciencia-ficcion", CategoryID: 4,
		Image:       "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=400&h=600&fit=crop",
		Description: "En 2045, Wade Watts escapa de su realidad distópica sumergiéndose en OASIS, un universo virtual donde busca un tesoro dejado por el creador del juego.",
		Stock:       28, ISBN: "978-0307887436",
	},
	{
		ID: 17, Title: "1984", Author: "George Orwell", Price: 13.99,
		Category: "clasicos", CategoryID: 5,
		Image:       "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=400&h=600&fit=crop",
		Description: "Winston Smith vive en Oceanía, un estado totalitario donde el Gran Hermano controla cada aspecto de la vida. Una novela sobre vigilancia, manipulación y libertad.",
		Stock:       40, ISBN: "978-0451524935",
	},
	{
		ID: 18, Title: "Orgullo y Prejuicio", Author: "Jane Austen", Price: 12.99,
		Category: "clasicos", CategoryID: 5,
		Image:       "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=400&h=600&fit=crop",
		Description: "Elizabeth Bennet debe navegar las complejidades sociales de la Inglaterra del siglo XIX mientras trata con el orgulloso Sr. Darcy.",
		Stock:       35, ISBN: "978-0141439518",
	},
	{
		ID: 19, Title: "Cien Años de Soledad", Author: "Gabriel García Márquez", Price: 16.99,
		Category: "clasicos", CategoryID: 5,
		Image:       "https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=400&h=600&fit=crop",
		Description: "La historia de la familia Buendía a lo largo de siete generaciones en el pueblo ficticio de Macondo, una obra maestra del realismo mágico.",
		Stock:       30, ISBN: "978-0307474728",
	},
	{
		ID: 20, Title: "El Gran Gatsby", Author: "F. Scott Fitzgerald", Price: 14.50,
		Category: "clasicos", CategoryID: 5,
		Image:       "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400&h=600&fit=crop",
		Description: "Nick Carraway narra la trágica historia de Jay Gatsby y su obsesión por Daisy Buchanan en la era del jazz estadounidense.",
		Stock:       32, ISBN: "978-0743273565",
	},
}
