package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mmeshcher/workshop-system/internal/model"
	"github.com/mmeshcher/workshop-system/internal/repository"
	"github.com/mmeshcher/workshop-system/internal/sms"
	"github.com/mmeshcher/workshop-system/internal/storage"
)

type stubSmsProvider struct {
	sent    []sms.Message
	sendErr error
}

func (p *stubSmsProvider) Send(_ context.Context, msg sms.Message) (*sms.Result, error) {
	if p.sendErr != nil {
		return nil, p.sendErr
	}
	p.sent = append(p.sent, msg)
	return &sms.Result{MessageID: "stub-1"}, nil
}

func (p *stubSmsProvider) Name() string { return "Stub" }

func newTestService(t *testing.T) (*Service, *stubSmsProvider) {
	t.Helper()

	store := storage.NewMemoryStore()
	db := repository.NewDB(store, zap.NewNop())
	if err := db.InitializeDatabase(context.Background()); err != nil {
		t.Fatalf("InitializeDatabase: %v", err)
	}

	provider := &stubSmsProvider{}
	return NewService(db, provider, store, zap.NewNop(), "en"), provider
}

func TestDeleteCustomer_RefusedWhileOrdersExist(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Seed orders "1" and "3" both reference customer "1".
	if err := svc.DeleteCustomer(ctx, "1"); !errors.Is(err, ErrCustomerHasOrders) {
		t.Fatalf("err = %v, want ErrCustomerHasOrders", err)
	}

	if err := svc.DeleteOrder(ctx, "1"); err != nil {
		t.Fatalf("DeleteOrder(1): %v", err)
	}
	if err := svc.DeleteCustomer(ctx, "1"); !errors.Is(err, ErrCustomerHasOrders) {
		t.Fatalf("err = %v, want ErrCustomerHasOrders while order 3 remains", err)
	}

	if err := svc.DeleteOrder(ctx, "3"); err != nil {
		t.Fatalf("DeleteOrder(3): %v", err)
	}
	if err := svc.DeleteCustomer(ctx, "1"); err != nil {
		t.Fatalf("DeleteCustomer after orders removed: %v", err)
	}

	customers, err := svc.Customers(ctx)
	if err != nil {
		t.Fatalf("Customers: %v", err)
	}
	for _, c := range customers {
		if c.ID == "1" {
			t.Fatalf("customer 1 still present after delete")
		}
	}
}

func TestDeleteProduct_RefusedWhileReferencedByOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	order, err := svc.AddOrder(ctx, OrderInput{
		CustomerID:  "2",
		ProductID:   "2",
		ProductName: "Metal Brackets",
	})
	if err != nil {
		t.Fatalf("AddOrder: %v", err)
	}

	if err := svc.DeleteProduct(ctx, "2"); !errors.Is(err, ErrProductInUse) {
		t.Fatalf("err = %v, want ErrProductInUse", err)
	}

	if err := svc.DeleteOrder(ctx, order.ID); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}
	if err := svc.DeleteProduct(ctx, "2"); err != nil {
		t.Fatalf("DeleteProduct after order removed: %v", err)
	}
}

func TestAddCustomer_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddCustomer(context.Background(), CustomerInput{
		Name:  "No Email",
		Phone: "+15550101",
		Email: "not-an-email",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestAddProduct_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddProduct(context.Background(), ProductInput{Name: "Free", Price: 0})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestAddOrder_UnknownCustomer(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddOrder(context.Background(), OrderInput{
		CustomerID:  "missing",
		ProductName: "Shelf",
	})
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
}

func TestAddOrder_DefaultsToPending(t *testing.T) {
	svc, _ := newTestService(t)

	order, err := svc.AddOrder(context.Background(), OrderInput{
		CustomerID:  "1",
		ProductName: "Shelf",
	})
	if err != nil {
		t.Fatalf("AddOrder: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("status = %q, want %q", order.Status, model.OrderStatusPending)
	}
	if order.DateCreated == "" {
		t.Fatalf("dateCreated not stamped")
	}
}

func TestCompleteOrder(t *testing.T) {
	svc, provider := newTestService(t)
	ctx := context.Background()

	order, notified, err := svc.CompleteOrder(ctx, "1")
	if err != nil {
		t.Fatalf("CompleteOrder: %v", err)
	}
	if order.Status != model.OrderStatusCompleted {
		t.Fatalf("status = %q, want %q", order.Status, model.OrderStatusCompleted)
	}
	if order.DateCompleted == "" {
		t.Fatalf("dateCompleted not stamped")
	}
	if order.DateCompleted < order.DateCreated {
		t.Fatalf("dateCompleted %q before dateCreated %q", order.DateCompleted, order.DateCreated)
	}
	if !notified {
		t.Fatalf("notified = false, want true")
	}

	if len(provider.sent) != 1 {
		t.Fatalf("sms sent = %d, want 1", len(provider.sent))
	}
	msg := provider.sent[0]
	if msg.To != "+1234567890" {
		t.Fatalf("sms to = %q, want customer 1 phone", msg.To)
	}
	want := "Your order Custom Cabinet (ID: 1) is now complete and ready for pickup."
	if msg.Body != want {
		t.Fatalf("sms body = %q, want %q", msg.Body, want)
	}

	// The transition must be persisted, not just reflected in the return.
	stored, err := svc.GetOrderByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetOrderByID: %v", err)
	}
	if stored.Status != model.OrderStatusCompleted || stored.DateCompleted != order.DateCompleted {
		t.Fatalf("stored order = %+v, want completed at %q", stored, order.DateCompleted)
	}
}

func TestCompleteOrder_AlreadyCompletedIsNoOp(t *testing.T) {
	svc, provider := newTestService(t)
	ctx := context.Background()

	first, _, err := svc.CompleteOrder(ctx, "1")
	if err != nil {
		t.Fatalf("first CompleteOrder: %v", err)
	}

	second, notified, err := svc.CompleteOrder(ctx, "1")
	if err != nil {
		t.Fatalf("second CompleteOrder: %v", err)
	}
	if notified {
		t.Fatalf("second completion sent a notification")
	}
	if second.DateCompleted != first.DateCompleted {
		t.Fatalf("dateCompleted changed on re-completion: %q -> %q",
			first.DateCompleted, second.DateCompleted)
	}
	if len(provider.sent) != 1 {
		t.Fatalf("sms sent = %d, want exactly 1", len(provider.sent))
	}
}

func TestCompleteOrder_SmsFailureDoesNotFailCompletion(t *testing.T) {
	svc, provider := newTestService(t)
	provider.sendErr = errors.New("gateway down")

	order, notified, err := svc.CompleteOrder(context.Background(), "1")
	if err != nil {
		t.Fatalf("CompleteOrder: %v", err)
	}
	if notified {
		t.Fatalf("notified = true despite send failure")
	}
	if order.Status != model.OrderStatusCompleted {
		t.Fatalf("order not completed on sms failure")
	}
}

func TestCompleteOrder_UnknownOrder(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.CompleteOrder(context.Background(), "missing")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestGetCustomerOrders(t *testing.T) {
	svc, _ := newTestService(t)

	orders, err := svc.GetCustomerOrders(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetCustomerOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("orders = %d, want 2", len(orders))
	}
	for _, o := range orders {
		if o.CustomerID != "1" {
			t.Fatalf("order %s belongs to customer %s", o.ID, o.CustomerID)
		}
	}
}

func TestGetOrdersByStatus(t *testing.T) {
	svc, _ := newTestService(t)

	orders, err := svc.GetOrdersByStatus(context.Background(), model.OrderStatusInProgress)
	if err != nil {
		t.Fatalf("GetOrdersByStatus: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "2" {
		t.Fatalf("orders = %+v, want seed order 2 only", orders)
	}
}

func TestSummarize(t *testing.T) {
	svc, _ := newTestService(t)

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.TotalOrders != 3 || summary.PendingOrders != 1 ||
		summary.InProgress != 1 || summary.CompletedOrders != 1 {
		t.Fatalf("order counts = %+v", summary)
	}
	if summary.TotalCustomers != 2 || summary.TotalProducts != 3 {
		t.Fatalf("collection counts = %+v", summary)
	}
	if len(summary.RecentOrders) != 3 {
		t.Fatalf("recent orders = %d, want 3", len(summary.RecentOrders))
	}
	// Newest first.
	if summary.RecentOrders[0].DateCreated < summary.RecentOrders[len(summary.RecentOrders)-1].DateCreated {
		t.Fatalf("recent orders not sorted newest first")
	}
}

func TestBuildReport_Filters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	byStatus, err := svc.BuildReport(ctx, ReportFilter{Status: model.OrderStatusPending})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if byStatus.TotalOrders != 1 || byStatus.PendingOrders != 1 {
		t.Fatalf("status filter = %+v", byStatus)
	}

	byCustomer, err := svc.BuildReport(ctx, ReportFilter{CustomerID: "2"})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if byCustomer.TotalOrders != 1 || byCustomer.Orders[0].ID != "2" {
		t.Fatalf("customer filter = %+v", byCustomer)
	}

	unfiltered, err := svc.BuildReport(ctx, ReportFilter{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if unfiltered.TotalOrders != 3 {
		t.Fatalf("unfiltered total = %d, want 3", unfiltered.TotalOrders)
	}
}

func TestStatus(t *testing.T) {
	svc, _ := newTestService(t)

	status := svc.Status(context.Background())
	if !status.Connected {
		t.Fatalf("connected = false")
	}
	if status.Customers != 2 || status.Products != 3 || status.Orders != 3 {
		t.Fatalf("status = %+v", status)
	}
}

func TestLanguagePreference(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if lang := svc.Language(ctx); lang != "en" {
		t.Fatalf("default language = %q, want en", lang)
	}

	if err := svc.SetLanguage(ctx, "ar"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if lang := svc.Language(ctx); lang != "ar" {
		t.Fatalf("language = %q, want ar", lang)
	}

	if err := svc.SetLanguage(ctx, "fr"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("err = %v, want ErrUnsupportedLanguage", err)
	}
	if lang := svc.Language(ctx); lang != "ar" {
		t.Fatalf("rejected language overwrote preference: %q", lang)
	}
}
