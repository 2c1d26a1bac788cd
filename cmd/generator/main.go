// Command generator emits a random catalog snapshot JSON file for demos
// and CLI testing.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/urfave/cli/v2"

	"github.com/letmevibethatforyou/sitesearch/catalog"
)

var (
	brands = map[string][]string{
		"Xiaomi":  {"Умная розетка Mi Smart Plug", "Робот-пылесос Mi Robot Vacuum", "Увлажнитель Smartmi", "Камера Mi Home 360"},
		"Yandex":  {"Умная колонка Станция Мини", "Умная лампочка", "Пульт управления умным домом"},
		"Aqara":   {"Датчик открытия двери", "Датчик температуры и влажности", "Беспроводной выключатель"},
		"TP-Link": {"Умная розетка Tapo", "Камера видеонаблюдения Tapo", "Wi-Fi роутер Archer"},
		"Philips": {"Умная лампа Hue", "Светодиодная лента Hue", "Потолочный светильник"},
	}

	categories = []string{
		"умные розетки", "освещение", "датчики", "камеры", "колонки", "пылесосы",
	}

	articleTitles = []string{
		"Как выбрать умную розетку",
		"Обзор датчиков для умного дома",
		"Сценарии автоматизации освещения",
		"Настройка умного дома с нуля",
		"Экономия электроэнергии с умными устройствами",
	}

	newsTitles = []string{
		"Вышло обновление Mi Home",
		"Новые датчики Aqara в продаже",
		"Скидки на умные колонки",
		"Анонс новой линейки умных ламп",
	}

	ratingTitles = []string{
		"Рейтинг умных розеток",
		"Лучшие роботы-пылесосы",
		"Топ камер видеонаблюдения",
		"Лучшие датчики для квартиры",
	}

	tagPool = []string{
		"умный дом", "wifi", "автоматизация", "энергосбережение", "безопасность", "zigbee",
	}
)

func randomTags() []string {
	n := rand.IntN(3) + 1
	tags := make([]string, 0, n)
	for _, idx := range rand.Perm(len(tagPool))[:n] {
		tags = append(tags, tagPool[idx])
	}
	return tags
}

func randomProduct() catalog.Product {
	brandNames := make([]string, 0, len(brands))
	for b := range brands {
		brandNames = append(brandNames, b)
	}

	brand := brandNames[rand.IntN(len(brandNames))]
	names := brands[brand]
	name := names[rand.IntN(len(names))]
	category := categories[rand.IntN(len(categories))]
	id := ksuid.New().String()

	return catalog.Product{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("%s от %s для вашего умного дома", name, brand),
		Brand:       brand,
		Category:    category,
		Tags:        randomTags(),
		URL:         "/products/" + id,
		Image:       "/images/" + id + ".jpg",
		Price:       float64(rand.IntN(15000) + 500),
		Rating:      float64(rand.IntN(21)+30) / 10, // 3.0-5.0
	}
}

func randomArticle(publishedAt time.Time) catalog.Article {
	title := articleTitles[rand.IntN(len(articleTitles))]
	id := ksuid.New().String()

	return catalog.Article{
		ID:          id,
		Title:       title,
		Excerpt:     title + ": подробное руководство с примерами.",
		Body:        strings.Repeat(title+". ", 40),
		Tags:        randomTags(),
		Category:    categories[rand.IntN(len(categories))],
		URL:         "/articles/" + id,
		PublishedAt: publishedAt,
	}
}

func randomNews(publishedAt time.Time) catalog.NewsItem {
	title := newsTitles[rand.IntN(len(newsTitles))]
	id := ksuid.New().String()

	return catalog.NewsItem{
		ID:          id,
		Title:       title,
		Excerpt:     title + " — подробности в нашем материале.",
		Category:    categories[rand.IntN(len(categories))],
		Tags:        randomTags(),
		URL:         "/news/" + id,
		PublishedAt: publishedAt,
	}
}

func randomRating(publishedAt time.Time) catalog.Rating {
	title := ratingTitles[rand.IntN(len(ratingTitles))]
	id := ksuid.New().String()

	return catalog.Rating{
		ID:          id,
		Title:       title,
		Excerpt:     title + " по версии нашей редакции.",
		Category:    categories[rand.IntN(len(categories))],
		Tags:        randomTags(),
		URL:         "/ratings/" + id,
		Score:       float64(rand.IntN(21)+30) / 10,
		PublishedAt: publishedAt,
	}
}

func runAction(c *cli.Context) error {
	ctx := c.Context
	output := c.String("output")
	products := c.Int("products")
	articles := c.Int("articles")
	news := c.Int("news")
	ratings := c.Int("ratings")

	slog.InfoContext(ctx, "Generating catalog snapshot",
		"output", output,
		"products", products,
		"articles", articles,
		"news", news,
		"ratings", ratings,
	)

	snapshot := catalog.Snapshot{}
	now := time.Now()

	for i := 0; i < products; i++ {
		snapshot.Products = append(snapshot.Products, randomProduct())
	}
	for i := 0; i < articles; i++ {
		snapshot.Articles = append(snapshot.Articles, randomArticle(now.AddDate(0, 0, -rand.IntN(365))))
	}
	for i := 0; i < news; i++ {
		snapshot.News = append(snapshot.News, randomNews(now.AddDate(0, 0, -rand.IntN(90))))
	}
	for i := 0; i < ratings; i++ {
		snapshot.Ratings = append(snapshot.Ratings, randomRating(now.AddDate(0, 0, -rand.IntN(180))))
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot to %s: %w", output, err)
	}

	slog.InfoContext(ctx, "Successfully generated catalog snapshot", "output", output)
	return nil
}

func main() {
	app := &cli.App{
		Name:  "generator",
		Usage: "Generate a random catalog snapshot JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
				EnvVars: []string{"SITESEARCH_CATALOG"},
				Value:   "catalog.json",
			},
			&cli.IntFlag{
				Name:  "products",
				Usage: "Number of products to generate",
				Value: 20,
			},
			&cli.IntFlag{
				Name:  "articles",
				Usage: "Number of articles to generate",
				Value: 5,
			},
			&cli.IntFlag{
				Name:  "news",
				Usage: "Number of news items to generate",
				Value: 5,
			},
			&cli.IntFlag{
				Name:  "ratings",
				Usage: "Number of rating entries to generate",
				Value: 3,
			},
		},
		Action: runAction,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}
