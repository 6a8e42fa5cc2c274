package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/hoangson03112/VietXanh/internal/shared/connection"
	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"
	"github.com/hoangson03112/VietXanh/internal/shared/database/helper"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type seedProduct struct {
	name        string
	description string
	price       string
	stock       int32
	images      []string
	featured    bool
}

func main() {
	_ = godotenv.Load()

	db, err := connection.ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	queries := dbgen.New(db)
	ctx := context.Background()

	seedAdmin(ctx, queries)
	seedProducts(ctx, queries)
	seedBlogs(ctx, queries)

	log.Println("✅ Seed completed")
}

func seedAdmin(ctx context.Context, queries *dbgen.Queries) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@vietxanh.vn"
	}

	if _, err := queries.GetUserByEmail(ctx, email); err == nil {
		log.Printf("Admin %s already exists, skipping", email)
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		log.Println("⚠️ ADMIN_PASSWORD not set, using default, change it after first login")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	_, err = queries.CreateUser(ctx, dbgen.CreateUserParams{
		Email:    email,
		Name:     "Việt Xanh Admin",
		Password: string(hashed),
		Role:     "ADMIN",
	})
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Created admin user %s", email)
}

func seedProducts(ctx context.Context, queries *dbgen.Queries) {
	products := []seedProduct{
		{
			name:        "Túi cuộn rút phân hủy sinh học",
			description: "Túi đựng rác tự phân hủy làm từ tinh bột ngô, thân thiện với môi trường.",
			price:       "20000",
			stock:       500,
			images:      []string{"/images/products/tui-cuon-rut.png"},
			featured:    true,
		},
		{
			name:        "Ống hút gạo",
			description: "Ống hút làm từ bột gạo, dùng được cho cả đồ uống nóng và lạnh.",
			price:       "25000",
			stock:       300,
			images:      []string{"/images/products/ong-hut-gao.png"},
			featured:    true,
		},
		{
			name:        "Hộp bã mía",
			description: "Hộp đựng thức ăn làm từ bã mía, chịu nhiệt tốt, phân hủy trong 45 ngày.",
			price:       "35000",
			stock:       200,
			images:      []string{"/images/products/hop-ba-mia.png"},
			featured:    true,
		},
		{
			name:        "Găng tay phân hủy sinh học",
			description: "Găng tay dùng một lần tự phân hủy, an toàn khi tiếp xúc thực phẩm.",
			price:       "30000",
			stock:       400,
			images:      []string{"/images/products/gang-tay.png"},
			featured:    false,
		},
	}

	for _, p := range products {
		_, err := queries.CreateProduct(ctx, dbgen.CreateProductParams{
			Name:        p.name,
			Description: helper.StringToNull(p.description),
			Price:       p.price,
			Stock:       p.stock,
			Images:      p.images,
			Featured:    p.featured,
		})
		if err != nil {
			log.Printf("⚠️ Failed to seed product %q: %v", p.name, err)
			continue
		}
		log.Printf("Seeded product %q", p.name)
	}
}

func seedBlogs(ctx context.Context, queries *dbgen.Queries) {
	blogs := []dbgen.CreateBlogParams{
		{
			Title:    "Vì sao nên chuyển sang túi phân hủy sinh học?",
			Content:  "Mỗi năm Việt Nam thải ra hàng triệu tấn rác nhựa. Túi phân hủy sinh học làm từ tinh bột ngô phân hủy hoàn toàn trong vòng 6 tháng...",
			Author:   "Việt Xanh",
			Img:      sql.NullString{String: "/images/blogs/tui-sinh-hoc.jpg", Valid: true},
			Featured: true,
		},
		{
			Title:    "Sống xanh bắt đầu từ căn bếp",
			Content:  "Những thay đổi nhỏ trong căn bếp như dùng ống hút gạo, hộp bã mía sẽ giúp giảm đáng kể lượng rác nhựa của gia đình bạn...",
			Author:   "Việt Xanh",
			Img:      sql.NullString{String: "/images/blogs/song-xanh.jpg", Valid: true},
			Featured: false,
		},
	}

	for _, b := range blogs {
		if _, err := queries.CreateBlog(ctx, b); err != nil {
			log.Printf("⚠️ Failed to seed blog %q: %v", b.Title, err)
			continue
		}
		log.Printf("Seeded blog %q", b.Title)
	}
}
