package memory

import "github.com/iudanet/coffeeshop/pkg/api"

// seedProducts начальный каталог меню
var seedProducts = []api.Product{
	{ID: "1", Name: "Espresso", Category: "Classic Coffee", Price: 5, Image: "/assets/espresso.jpg", Description: "Bold and strong, just like the waves of the sea"},
	{ID: "2", Name: "Americano", Category: "Classic Coffee", Price: 3.9, Image: "/assets/americano.png", Description: "A softened espresso with a bit of hot water"},
	{ID: "3", Name: "Cappuccino", Category: "Classic Coffee", Price: 6.2, Image: "/assets/cappuccino.webp", Description: "Foamy coffee, but enough to keep you awake for a whole day"},
	{ID: "4", Name: "Mocha", Category: "Classic Coffee", Price: 6.5, Image: "/assets/mocha.jpg", Description: "A chocolatey delight with an espresso kick"},
	{ID: "5", Name: "Flat White", Category: "Classic Coffee", Price: 6.7, Image: "/assets/flat_white.jpg", Description: "Silky smooth espresso with creamy milk"},
	{ID: "6", Name: "Macchiato", Category: "Classic Coffee", Price: 5.2, Image: "/assets/macchiato.jpg", Description: "Espresso topped with a hint of frothy milk"},
	{ID: "7", Name: "Turkish Coffee", Category: "Classic Coffee", Price: 4.5, Image: "/assets/turkish_coffee.jpg", Description: "Rich, unfiltered, and steeped in tradition"},
	{ID: "8", Name: "Irish Coffee", Category: "Classic Coffee", Price: 9.0, Image: "/assets/irish_coffee.jpg", Description: "Coffee with a touch of whiskey and whipped cream"},
	{ID: "9", Name: "Vienna Coffee", Category: "Classic Coffee", Price: 7.5, Image: "/assets/vienna_coffee.jpg", Description: "Strong espresso topped with whipped cream"},
	{ID: "10", Name: "The Captain's Quartet", Category: "Specialty Drinks", Price: 8.3, Image: "/assets/captains_quartet.jpg", Description: "A perfect choice for a group of four coffee lovers"},
	{ID: "11", Name: "Kraken's Iced Coffee", Category: "Specialty Drinks", Price: 3, Image: "/assets/kraken_iced.jpg", Description: "Strong ice coffee, the best to drink before trying to engage the kraken"},
	{ID: "12", Name: "Dead Man's Drip", Category: "Specialty Drinks", Price: 3.2, Image: "/assets/dead_mans_drip.jpg", Description: "Intense espresso with a lingering bitter taste"},
	{ID: "13", Name: "Buccaneer's Brew", Category: "Specialty Drinks", Price: 7.5, Image: "/assets/buccaneers_brew.jpg", Description: "A daring mix of espresso, caramel, and sea salt"},
	{ID: "14", Name: "Jolly Roger Java", Category: "Specialty Drinks", Price: 6.9, Image: "/assets/jolly_roger_java.jpg", Description: "A pirate's favorite—espresso with a hint of rum flavor"},
	{ID: "15", Name: "Sea Witch's Latte", Category: "Specialty Drinks", Price: 8.2, Image: "/assets/sea_witchs_latte.jpg", Description: "Dark roast with a hint of vanilla and magic"},
	{ID: "16", Name: "Coconut Coffee", Category: "Specialty Drinks", Price: 7.8, Image: "/assets/coconut_coffee.jpg", Description: "A tropical coffee with a splash of coconut milk"},
	{ID: "17", Name: "Blackbeard's Blend", Category: "Specialty Drinks", Price: 9.0, Image: "/assets/blackbeards_blend.jpg", Description: "Bold and mysterious, just like the legend"},
	{ID: "18", Name: "Gold Rush Espresso", Category: "Specialty Drinks", Price: 8.5, Image: "/assets/gold_rush_espresso.jpg", Description: "A golden-hued coffee with a shot of honey"},
	{ID: "19", Name: "Shiver Me Cold Brew", Category: "Cold Brews", Price: 21, Image: "/assets/shiver_me_cold_brew.jpg", Description: "Chilly bitter taste with a touch of milk"},
	{ID: "20", Name: "Frappuccino", Category: "Cold Brews", Price: 2, Image: "/assets/frappuccino.jpg", Description: "Chocolatey iced coffee"},
	{ID: "21", Name: "Ice Latte", Category: "Cold Brews", Price: 11, Image: "/assets/ice_latte.jpg", Description: "Perfect for any girlie who likes adventures <3"},
	{ID: "22", Name: "Vanilla Sweet Cold Brew", Category: "Cold Brews", Price: 6.5, Image: "/assets/vanilla_cold_brew.jpg", Description: "Smooth cold brew infused with vanilla syrup"},
	{ID: "23", Name: "Chocolate Hazelnut Cold Brew", Category: "Cold Brews", Price: 7.0, Image: "/assets/chocolate_hazelnut_cold_brew.jpg", Description: "Nutty, chocolatey, and ice cold"},
	{ID: "24", Name: "Salted Caramel Cold Brew", Category: "Cold Brews", Price: 6.8, Image: "/assets/salted_caramel.jpg", Description: "A perfect mix of coffee and caramel with a salty twist"},
	{ID: "25", Name: "Pirate's Coconut Cold Brew", Category: "Cold Brews", Price: 7.2, Image: "/assets/coconut_cold_brew.jpg", Description: "Coconut-flavored cold brew for a tropical twist"},
	{ID: "26", Name: "Dark Roast Nitro", Category: "Cold Brews", Price: 8.0, Image: "/assets/nitro_brew.jpg", Description: "A strong, smooth nitro-infused cold brew"},
	{ID: "27", Name: "Maple Bourbon Cold Brew", Category: "Cold Brews", Price: 9.5, Image: "/assets/maple_bourbon.jpg", Description: "Rich maple and bourbon flavor blended into cold brew"},
	{ID: "28", Name: "Under The Water Tea", Category: "Teas", Price: 7.7, Image: "/assets/under_the_water_tea.jpg", Description: "Soothing and calming, with a sense of danger"},
	{ID: "29", Name: "Mermaid's Chai", Category: "Teas", Price: 9.9, Image: "/assets/mermaids_chai.webp", Description: "It seems like its taste is calling to you"},
	{ID: "30", Name: "Stormy Earl Grey", Category: "Teas", Price: 8.5, Image: "/assets/stormy_earl_grey.jpg", Description: "A refreshing and warming adventure"},
	{ID: "31", Name: "Pirate's Green Tea", Category: "Teas", Price: 6.5, Image: "/assets/pirates_green_tea.jpg", Description: "Refreshing and packed with antioxidants"},
	{ID: "32", Name: "Spiced Rum Tea", Category: "Teas", Price: 7.0, Image: "/assets/spiced_rum_tea.jpg", Description: "Black tea with a hint of warm spices"},
	{ID: "33", Name: "Golden Turmeric Tea", Category: "Teas", Price: 7.2, Image: "/assets/golden_turmeric.jpg", Description: "A warm, soothing tea with turmeric and honey"},
	{ID: "34", Name: "Berry Treasure Tea", Category: "Teas", Price: 8.5, Image: "/assets/berry_treasure.jpg", Description: "A fruity tea blend packed with flavor"},
	{ID: "35", Name: "Captain’s Chamomile", Category: "Teas", Price: 6.8, Image: "/assets/captains_chamomile.jpg", Description: "A relaxing chamomile tea with a citrus hint"},
	{ID: "36", Name: "Minty Shipmate Tea", Category: "Teas", Price: 6.9, Image: "/assets/minty.jpg", Description: "A refreshing peppermint tea"},
}
