package catalog

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/money"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

// itemsPerCategory keeps the catalog at 13 x 8 = 104 products.
const itemsPerCategory = 13

const saleDiscount = 0.8

var adjectives = []string{
	"Premium", "Essential", "Classic", "Modern", "Eco-Friendly",
	"Luxury", "Compact", "Professional", "Artisan", "Smart",
}

var nounsByCategory = map[enums.Category][]string{
	enums.CategoryElectronics:  {"Headphones", "Speaker", "Monitor", "Keyboard", "Charger", "Camera", "Tablet", "Smartwatch"},
	enums.CategoryFashion:      {"T-Shirt", "Jacket", "Sneakers", "Scarf", "Denim", "Backpack", "Sunglasses", "Watch"},
	enums.CategoryHomeGoods:    {"Lamp", "Vase", "Planter", "Throw Blanket", "Candle", "Mug", "Clock", "Mirror"},
	enums.CategoryBeauty:       {"Face Cream", "Serum", "Lipstick", "Perfume", "Cleanser", "Mask", "Oil", "Scrub"},
	enums.CategoryFitness:      {"Yoga Mat", "Dumbbells", "Resistance Bands", "Water Bottle", "Gym Bag", "Foam Roller", "Tracker", "Gloves"},
	enums.CategoryFoodBeverage: {"Coffee Beans", "Tea Set", "Chocolate", "Olive Oil", "Spices", "Honey", "Granola", "Juice"},
	enums.CategoryBooks:        {"Novel", "Cookbook", "Biography", "Art Book", "Guide", "Journal", "Anthology", "Manual"},
	enums.CategoryToys:         {"Puzzle", "Block Set", "Plushie", "Board Game", "Action Figure", "Craft Kit", "Robot", "Doll"},
}

var imagesByCategory = map[enums.Category][]string{
	enums.CategoryElectronics:  {"1496181133206-80ce9b88a853", "1526738549149-8e07eca6c147", "1546868871-7041f2a55e12", "1588872657578-838c64708169", "1593640408609-809312d69bfa"},
	enums.CategoryFashion:      {"1523381210434-271e8be1f52b", "1515886657613-9f3515b0c78f", "1483985988355-763728e1935b", "1542291026-7eec264c27ff", "1591047139829-d91a961c76c4"},
	enums.CategoryHomeGoods:    {"1583847268964-b8bc40d99fce", "1586023492125-27b2c045efd7", "1513694203232-719a280e022f", "1524758631624-e2822e304c36", "1505693542198-d451b6a71e4c"},
	enums.CategoryBeauty:       {"1596462502278-27bfdd403ccc", "1571781308732-9c1d331c009c", "1612817204324-730f3a975af3", "1608248597279-f99d160bfbc8", "1596462502278-27bfdd403ccc"},
	enums.CategoryFitness:      {"1517836357463-d25dfeac3438", "1599058945522-28d584b6f0ff", "1584735175315-9d5df23860e6", "1571902943202-507ec2618e8f", "1534438327276-14e5300c3a48"},
	enums.CategoryFoodBeverage: {"1563805042-7684c019e1cb", "1621939514649-fcaf53e54b35", "1582515045388-a7da743873e1", "1610832958506-aa56368176cf", "1512621776951-a57141f2eefd"},
	enums.CategoryBooks:        {"1544947950-fa07a98d237f", "1512820790803-83ca734da794", "1532012197267-da84d127e765", "1495446815901-a7297e633e8d", "1476275466078-400a78c9877d"},
	enums.CategoryToys:         {"1566576912902-1d6db6e811e6", "1596461404969-9ae70f2830c1", "1587654780291-39c94048e692", "1558060370-d648dd0da3d6", "1500995617975-ea0131789096"},
}

// Generate produces the demo catalog: a fixed shape (13 products per
// category) with randomized content. There is no seed contract; the catalog
// differs between runs.
func Generate() []types.Product {
	products := make([]types.Product, 0, itemsPerCategory*len(nounsByCategory))
	idCounter := 1

	for _, category := range enums.Categories() {
		for i := 0; i < itemsPerCategory; i++ {
			noun := pick(nounsByCategory[category])
			adjective := pick(adjectives)
			price := randomFloat(20, 500)
			isSale := rand.Float64() > 0.7

			product := types.Product{
				ID:          fmt.Sprintf("prod-%d", idCounter),
				Name:        adjective + " " + noun,
				Price:       price,
				Description: fmt.Sprintf("This %s %s is perfect for your needs. Crafted with care and designed to last.", strings.ToLower(adjective), strings.ToLower(noun)),
				Category:    category,
				Image:       fmt.Sprintf("https://images.unsplash.com/photo-%s?auto=format&fit=crop&w=600&q=80", pick(imagesByCategory[category])),
				Stock:       rand.Intn(51),
				IsSale:      isSale,
				Details:     detailsFor(category),
				Rating:      randomFloat(3.5, 5),
				Reviews:     randomInt(5, 500),
			}
			if isSale {
				sale := money.Round2(price * saleDiscount)
				product.SalePrice = &sale
			}
			if rand.Float64() > 0.5 {
				product.ShippingEstimate = "2-3 Business Days"
			} else {
				product.ShippingEstimate = "5-7 Business Days"
			}

			products = append(products, product)
			idCounter++
		}
	}

	return products
}

func detailsFor(category enums.Category) map[string]any {
	details := map[string]any{}
	switch category {
	case enums.CategoryElectronics:
		details["Warranty"] = fmt.Sprintf("%d Years", randomInt(1, 3))
		details["Battery Life"] = fmt.Sprintf("%d Hours", randomInt(10, 48))
	case enums.CategoryBooks:
		details["Pages"] = randomInt(200, 800)
		details["Author"] = fmt.Sprintf("Author %d", randomInt(1, 50))
	case enums.CategoryToys:
		details["Age"] = fmt.Sprintf("%d+", randomInt(3, 12))
		details["Material"] = "Safe Plastic/Wood"
	case enums.CategoryFashion:
		details["Material"] = pick([]string{"Cotton", "Polyester", "Leather", "Denim"})
		details["Care"] = "Machine Wash"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

func pick[T any](values []T) T {
	return values[rand.Intn(len(values))]
}

func randomInt(min, max int) int {
	return rand.Intn(max-min+1) + min
}

func randomFloat(min, max float64) float64 {
	return money.Round2(rand.Float64()*(max-min) + min)
}
