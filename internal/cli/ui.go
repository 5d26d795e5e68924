package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shop-cli/internal/cart"
	"shop-cli/internal/models"
	"shop-cli/internal/service"
	"shop-cli/internal/util"

	"go.uber.org/zap"
)

// UI drives the interactive menu over a reader/writer pair.
type UI struct {
	auth      *service.AuthService
	catalog   *service.CatalogService
	checkout  *service.CheckoutService
	snapshots cart.SnapshotStore
	in        *bufio.Reader
	out       io.Writer
	logger    *zap.Logger
	eof       bool
}

// NewUI creates the menu over the given streams
func NewUI(auth *service.AuthService, catalog *service.CatalogService, checkout *service.CheckoutService, snapshots cart.SnapshotStore, in *bufio.Reader, out io.Writer) *UI {
	return &UI{
		auth:      auth,
		catalog:   catalog,
		checkout:  checkout,
		snapshots: snapshots,
		in:        in,
		out:       out,
		logger:    util.GetLogger(),
	}
}

// Run loops on the root menu until the user exits or input ends.
func (ui *UI) Run(ctx context.Context) {
	for {
		fmt.Fprintln(ui.out, "\n1) Register")
		fmt.Fprintln(ui.out, "2) Login")
		fmt.Fprintln(ui.out, "0) Exit")
		fmt.Fprint(ui.out, "> ")

		choice, ok := ui.readLine()
		if !ok {
			return
		}
		switch choice {
		case "1":
			ui.handleRegister(ctx)
		case "2":
			ui.handleLogin(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(ui.out, "Unknown choice.")
		}
	}
}

func (ui *UI) handleRegister(ctx context.Context) {
	fmt.Fprintln(ui.out, "\n=== Register ===")
	username := ui.prompt("Username: ")
	password := ui.prompt("Password: ")
	role := ui.prompt("Role (buyer/seller): ")

	user, err := ui.auth.Register(ctx, username, password, strings.ToLower(role))
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	fmt.Fprintf(ui.out, "Registered %s as %s.\n", user.Username, user.Role)
}

func (ui *UI) handleLogin(ctx context.Context) {
	fmt.Fprintln(ui.out, "\n=== Login ===")
	username := ui.prompt("Username: ")
	password := ui.prompt("Password: ")

	user, err := ui.auth.Authenticate(ctx, username, password)
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	fmt.Fprintf(ui.out, "Welcome, %s!\n", user.Username)

	switch user.Role {
	case models.RoleSeller:
		session := NewSession(user, nil)
		ui.logger.Info("Seller session started",
			zap.String("session_id", session.ID.String()),
			zap.Int64("user_id", session.UserID))
		ui.sellerMenu(ctx, session)
	case models.RoleBuyer:
		loaded, err := ui.snapshots.Load(ctx, user.ID)
		if err != nil {
			ui.logger.Warn("Failed to load cart snapshot",
				zap.Int64("user_id", user.ID), zap.Error(err))
			loaded = cart.New()
		}
		session := NewSession(user, loaded)
		ui.logger.Info("Buyer session started",
			zap.String("session_id", session.ID.String()),
			zap.Int64("user_id", session.UserID),
			zap.Int("cart_items", session.Cart.Len()))
		ui.buyerMenu(ctx, session)
		if err := ui.snapshots.Save(ctx, session.UserID, session.Cart); err != nil {
			ui.logger.Warn("Failed to save cart snapshot",
				zap.Int64("user_id", session.UserID), zap.Error(err))
			fmt.Fprintln(ui.out, "Warning: cart could not be saved:", err)
		}
	}
}

func (ui *UI) sellerMenu(ctx context.Context, session *Session) {
	for {
		fmt.Fprintln(ui.out, "\n=== Seller menu ===")
		fmt.Fprintln(ui.out, "1) Add product")
		fmt.Fprintln(ui.out, "2) List products")
		fmt.Fprintln(ui.out, "3) Update product")
		fmt.Fprintln(ui.out, "4) Delete product")
		fmt.Fprintln(ui.out, "5) Sweep depleted products")
		fmt.Fprintln(ui.out, "6) Add category")
		fmt.Fprintln(ui.out, "7) List categories")
		fmt.Fprintln(ui.out, "0) Logout")
		fmt.Fprint(ui.out, "> ")

		choice, ok := ui.readLine()
		if !ok {
			return
		}
		switch choice {
		case "1":
			ui.addProduct(ctx)
		case "2":
			ui.listProducts(ctx)
		case "3":
			ui.updateProduct(ctx)
		case "4":
			ui.deleteProduct(ctx)
		case "5":
			ui.sweepDepleted(ctx)
		case "6":
			ui.addCategory(ctx)
		case "7":
			ui.listCategories(ctx)
		case "0":
			return
		default:
			fmt.Fprintln(ui.out, "Unknown choice.")
		}
	}
}

func (ui *UI) buyerMenu(ctx context.Context, session *Session) {
	for {
		fmt.Fprintln(ui.out, "\n=== Buyer menu ===")
		fmt.Fprintln(ui.out, "1) List products")
		fmt.Fprintln(ui.out, "2) Checkout")
		fmt.Fprintln(ui.out, "3) View cart")
		fmt.Fprintln(ui.out, "4) Remove cart item")
		fmt.Fprintln(ui.out, "5) My orders")
		fmt.Fprintln(ui.out, "0) Logout")
		fmt.Fprint(ui.out, "> ")

		choice, ok := ui.readLine()
		if !ok {
			return
		}
		switch choice {
		case "1":
			ui.listProducts(ctx)
		case "2":
			ui.checkoutItem(ctx, session)
		case "3":
			ui.viewCart(ctx, session)
		case "4":
			ui.removeCartItem(ctx, session)
		case "5":
			ui.listOrders(ctx, session)
		case "0":
			return
		default:
			fmt.Fprintln(ui.out, "Unknown choice.")
		}
	}
}

func (ui *UI) addProduct(ctx context.Context) {
	name := ui.prompt("Product name: ")
	price := ui.promptFloat("Price: ")
	quantity := ui.promptInt("Quantity: ")

	var categoryNames []string
	if raw := ui.prompt("Categories (comma-separated, empty for none): "); raw != "" {
		categoryNames = strings.Split(raw, ",")
	}

	product, warnings, err := ui.catalog.CreateProduct(ctx, name, price, quantity, categoryNames)
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	for _, warning := range warnings {
		fmt.Fprintln(ui.out, "Warning:", warning)
	}
	fmt.Fprintf(ui.out, "Product %q added with id %d.\n", product.Name, product.ID)
}

func (ui *UI) listProducts(ctx context.Context) {
	products, err := ui.catalog.ListProducts(ctx)
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(ui.out, "No products.")
		return
	}
	fmt.Fprintln(ui.out, "Products:")
	for _, p := range products {
		fmt.Fprintf(ui.out, "- id=%d  %s  price=%.2f  stock=%d  categories=%s\n",
			p.ID, p.Name, p.Price, p.Quantity, formatIDs(p.CategoryIDs))
	}
}

func (ui *UI) updateProduct(ctx context.Context) {
	currentName := ui.prompt("Product name to update: ")

	var update service.ProductUpdate
	if name := ui.prompt("New name (empty to keep): "); name != "" {
		update.Name = &name
	}
	if price, ok := ui.promptOptionalFloat("New price (empty to keep): "); ok {
		update.Price = &price
	}
	if quantity, ok := ui.promptOptionalInt("New quantity (empty to keep): "); ok {
		update.Quantity = &quantity
	}

	product, err := ui.catalog.UpdateProduct(ctx, currentName, update)
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	fmt.Fprintf(ui.out, "Product %d updated: %s price=%.2f stock=%d.\n",
		product.ID, product.Name, product.Price, product.Quantity)
}

func (ui *UI) deleteProduct(ctx context.Context) {
	name := ui.prompt("Product name to delete: ")
	if err := ui.catalog.DeleteProduct(ctx, name); err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	fmt.Fprintln(ui.out, "Product deleted.")
}

func (ui *UI) sweepDepleted(ctx context.Context) {
	removed, err := ui.catalog.SweepDepleted(ctx)
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	fmt.Fprintf(ui.out, "Removed %d depleted product(s).\n", removed)
}

func (ui *UI) addCategory(ctx context.Context) {
	name := ui.prompt("Category name: ")
	category, err := ui.catalog.CreateCategory(ctx, name)
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	fmt.Fprintf(ui.out, "Category %q added with id %d.\n", category.Name, category.ID)
}

func (ui *UI) listCategories(ctx context.Context) {
	categories, err := ui.catalog.ListCategories(ctx)
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	if len(categories) == 0 {
		fmt.Fprintln(ui.out, "No categories.")
		return
	}
	fmt.Fprintln(ui.out, "Categories:")
	for _, c := range categories {
		fmt.Fprintf(ui.out, "- id=%d  %s\n", c.ID, c.Name)
	}
}

func (ui *UI) checkoutItem(ctx context.Context, session *Session) {
	name := ui.prompt("Product name: ")
	quantity := ui.promptInt("Quantity: ")

	product, err := ui.checkout.Checkout(ctx, session.UserID, session.Cart, name, quantity)
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	fmt.Fprintf(ui.out, "Added %d x %s to your cart, %d left in stock.\n",
		quantity, product.Name, product.Quantity)
}

func (ui *UI) viewCart(ctx context.Context, session *Session) {
	if session.Cart.IsEmpty() {
		fmt.Fprintln(ui.out, "Your cart is empty.")
		return
	}
	lines, err := ui.checkout.CartLines(ctx, session.Cart)
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	fmt.Fprintln(ui.out, "Your cart:")
	var total float64
	for _, line := range lines {
		fmt.Fprintf(ui.out, "- %s  x%d  price=%.2f\n", line.Name, line.Quantity, line.Price)
		total += line.Price * float64(line.Quantity)
	}
	fmt.Fprintf(ui.out, "Total: %.2f\n", total)
}

func (ui *UI) removeCartItem(ctx context.Context, session *Session) {
	name := ui.prompt("Product name to remove: ")
	if err := ui.checkout.RemoveFromCart(ctx, session.Cart, name); err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	fmt.Fprintln(ui.out, "Removed from cart, stock restored.")
}

func (ui *UI) listOrders(ctx context.Context, session *Session) {
	orders, err := ui.checkout.Orders(ctx, session.UserID)
	if err != nil {
		fmt.Fprintln(ui.out, "Error:", err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(ui.out, "No orders yet.")
		return
	}
	fmt.Fprintln(ui.out, "Your orders:")
	for _, o := range orders {
		fmt.Fprintf(ui.out, "- order=%d  item=%d  x%d  %s\n",
			o.ID, o.ItemID, o.Quantity, o.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func (ui *UI) readLine() (string, bool) {
	line, err := ui.in.ReadString('\n')
	if err != nil && line == "" {
		ui.eof = true
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (ui *UI) prompt(label string) string {
	fmt.Fprint(ui.out, label)
	line, _ := ui.readLine()
	return line
}

// promptFloat re-prompts until a valid number is supplied.
func (ui *UI) promptFloat(label string) float64 {
	for {
		raw := ui.prompt(label)
		value, err := strconv.ParseFloat(raw, 64)
		if err == nil || ui.eof {
			return value
		}
		fmt.Fprintln(ui.out, "Please enter a number.")
	}
}

// promptInt re-prompts until a valid integer is supplied.
func (ui *UI) promptInt(label string) int {
	for {
		raw := ui.prompt(label)
		value, err := strconv.Atoi(raw)
		if err == nil || ui.eof {
			return value
		}
		fmt.Fprintln(ui.out, "Please enter a whole number.")
	}
}

// promptOptionalFloat treats empty input as "keep current".
func (ui *UI) promptOptionalFloat(label string) (float64, bool) {
	for {
		raw := ui.prompt(label)
		if raw == "" {
			return 0, false
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return value, true
		}
		fmt.Fprintln(ui.out, "Please enter a number or leave empty.")
	}
}

// promptOptionalInt treats empty input as "keep current".
func (ui *UI) promptOptionalInt(label string) (int, bool) {
	for {
		raw := ui.prompt(label)
		if raw == "" {
			return 0, false
		}
		value, err := strconv.Atoi(raw)
		if err == nil {
			return value, true
		}
		fmt.Fprintln(ui.out, "Please enter a whole number or leave empty.")
	}
}

func formatIDs(ids []int64) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
