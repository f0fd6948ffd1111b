package api

import (
	"net/http"

	"github.com/parthbuilds/shubhaKuteer2/internal/router"
)

// Routes builds the dispatch table. Declaration order is load-bearing:
// literal routes sit above the prefix routes that would swallow them, and
// each group ends with its own 404 fallthrough. GET /api/orders/test is
// intentionally left shadowed by the orders :id prefix, as it always has
// been.
func (h *Handler) Routes() []router.Route {
	return []router.Route{
		{Method: http.MethodGet, Pattern: "/api/test", Handler: h.Test},
		{Method: http.MethodGet, Pattern: "/api/health", Handler: h.Health},

		{Method: http.MethodPost, Pattern: "/api/auth/register", Handler: h.Register},
		{Method: http.MethodPost, Pattern: "/api/auth/login", Handler: h.Login},
		{Method: http.MethodGet, Pattern: "/api/dashboard-content", Handler: h.DashboardContent},

		{Method: http.MethodPost, Pattern: "/api/admin/auth/login", Handler: h.AdminLogin},
		{Method: http.MethodPost, Pattern: "/api/admin/auth/logout", Handler: h.AdminLogout},
		{Method: http.MethodGet, Pattern: "/api/admin/auth/check", Handler: h.AdminAuthCheck},

		{Method: "*", Pattern: "/admin/", Prefix: true,
			Exclude: []string{"/admin/login.html", "/admin/assets/"},
			Handler: h.AdminPagesGuard},

		{Method: http.MethodGet, Pattern: "/api/admin/products", Handler: h.ListProducts},
		{Method: http.MethodPost, Pattern: "/api/admin/products", Handler: h.CreateProduct},
		{Method: http.MethodGet, Pattern: "/api/admin/products/", Prefix: true, Handler: h.GetProduct},
		{Method: http.MethodPut, Pattern: "/api/admin/products/", Prefix: true, Handler: h.UpdateProduct},
		{Method: http.MethodDelete, Pattern: "/api/admin/products/", Prefix: true, Handler: h.DeleteProduct},
		{Method: "*", Pattern: "/api/admin/products", Prefix: true, Handler: h.ProductsFallthrough},

		{Method: http.MethodGet, Pattern: "/api/admin/categories/public", Handler: h.ListCategories},
		{Method: http.MethodGet, Pattern: "/api/admin/categories", Handler: h.ListCategories},
		{Method: http.MethodPost, Pattern: "/api/admin/categories", Handler: h.CreateCategory},
		{Method: http.MethodDelete, Pattern: "/api/admin/categories/", Prefix: true, Handler: h.DeleteCategory},
		{Method: "*", Pattern: "/api/admin/categories", Prefix: true, Handler: h.CategoriesFallthrough},

		{Method: http.MethodGet, Pattern: "/api/admin/attributes", Handler: h.ListAttributes},
		{Method: http.MethodPost, Pattern: "/api/admin/attributes", Handler: h.CreateAttribute},
		{Method: http.MethodDelete, Pattern: "/api/admin/attributes/", Prefix: true, Handler: h.DeleteAttribute},
		{Method: "*", Pattern: "/api/admin/attributes", Prefix: true, Handler: h.AttributesFallthrough},

		{Method: http.MethodGet, Pattern: "/api/admin/banners", Handler: h.ListBanners},
		{Method: http.MethodPost, Pattern: "/api/admin/banners", Handler: h.CreateBanner},
		{Method: http.MethodPut, Pattern: "/api/admin/banners/", Prefix: true, Handler: h.UpdateBanner},
		{Method: http.MethodDelete, Pattern: "/api/admin/banners/", Prefix: true, Handler: h.DeleteBanner},
		{Method: "*", Pattern: "/api/admin/banners", Prefix: true, Handler: h.BannersFallthrough},

		{Method: http.MethodPost, Pattern: "/api/admin/cloudinary/delete", Handler: h.CloudinaryDelete},

		{Method: http.MethodGet, Pattern: "/api/admin/coupons", Handler: h.ListCoupons},
		{Method: http.MethodPost, Pattern: "/api/admin/coupons", Handler: h.CreateCoupon},
		{Method: http.MethodPut, Pattern: "/api/admin/coupons/", Prefix: true, Handler: h.UpdateCoupon},
		{Method: http.MethodDelete, Pattern: "/api/admin/coupons/", Prefix: true, Handler: h.DeleteCoupon},
		{Method: "*", Pattern: "/api/admin/coupons", Prefix: true, Handler: h.CouponsFallthrough},

		{Method: http.MethodGet, Pattern: "/api/admin/users/me", Handler: h.AdminMe},
		{Method: http.MethodGet, Pattern: "/api/admin/users", Handler: h.ListAdmins},
		{Method: http.MethodPost, Pattern: "/api/admin/users", Handler: h.CreateAdmin},
		{Method: http.MethodPut, Pattern: "/api/admin/users/", Prefix: true, Handler: h.UpdateAdmin},
		{Method: http.MethodDelete, Pattern: "/api/admin/users/", Prefix: true, Handler: h.DeleteAdmin},
		{Method: "*", Pattern: "/api/admin/users", Prefix: true, Handler: h.AdminUsersFallthrough},

		{Method: http.MethodPost, Pattern: "/api/orders/create-order", Handler: h.CreateOrderCheckout},
		{Method: http.MethodPost, Pattern: "/api/orders/capture-order", Handler: h.CaptureOrder},
		{Method: http.MethodPost, Pattern: "/api/orders/cancel-order", Handler: h.CancelOrder},
		{Method: http.MethodGet, Pattern: "/api/orders", Handler: h.ListOrders},
		{Method: http.MethodGet, Pattern: "/api/orders/stats", Handler: h.OrderStats},
		{Method: http.MethodGet, Pattern: "/api/orders/", Prefix: true, Handler: h.GetOrder},
		{Method: http.MethodDelete, Pattern: "/api/orders/", Prefix: true, Handler: h.DeleteOrder},
		{Method: http.MethodPut, Pattern: "/api/orders/", Prefix: true, Handler: h.UpdateDeliveryStatus},
		{Method: http.MethodGet, Pattern: "/api/orders/test", Handler: h.OrdersTest},
		{Method: "*", Pattern: "/api/orders", Prefix: true, Handler: h.OrdersFallthrough},

		{Method: http.MethodGet, Pattern: "/api/user/profile", Handler: h.Profile},
		{Method: http.MethodPut, Pattern: "/api/user/profile", Handler: h.UpdateProfile},
		{Method: http.MethodPut, Pattern: "/api/user/password", Handler: h.UpdatePassword},
		{Method: "*", Pattern: "/api/user", Prefix: true, Handler: h.UserFallthrough},

		{Method: http.MethodGet, Pattern: "/api/auth/check", Handler: h.AuthCheck},

		{Method: http.MethodGet, Pattern: "/api/users", Handler: h.DeprecatedUsers},
		{Method: http.MethodPost, Pattern: "/api/users", Handler: h.DeprecatedUsers},
	}
}
