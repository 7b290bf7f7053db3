package main

import "github.com/mchmarny/supernav/pkg/menu"

// exampleMenu is served when no menu file is configured.
func exampleMenu(b *menu.Builder) {
	b.Item("dashboard", "Dashboard",
		menu.WithDescription("Overview of your account"),
		menu.WithIcon("fas fa-tachometer-alt"),
		menu.WithURL("/dashboard"),
		menu.WithChildren(func(b *menu.Builder) {
			b.Item("analytics", "Analytics", menu.WithDescription("Traffic and usage"), menu.WithIcon("fas fa-chart-line"), menu.WithURL("/dashboard/analytics"))
			b.Item("reports", "Reports", menu.WithDescription("Scheduled and saved reports"), menu.WithIcon("fas fa-file-alt"), menu.WithURL("/dashboard/reports"))
		}),
	)

	b.Item("users", "Users",
		menu.WithDescription("People with access"),
		menu.WithIcon("fas fa-users"),
		menu.WithChildren(func(b *menu.Builder) {
			b.Item("user_list", "User List", menu.WithDescription("Browse all users"), menu.WithURL("/users"))
			b.Item("new_user", "New User", menu.WithDescription("Invite someone"), menu.WithURL("/users/new"))
			b.Item("roles", "Roles", menu.WithDescription("Permissions by role"), menu.WithURL("/users/roles"))
		}),
	)

	b.Item("settings", "Settings",
		menu.WithDescription("Account configuration"),
		menu.WithIcon("fas fa-cog"),
		menu.WithURL("/settings"),
		menu.WithChildren(func(b *menu.Builder) {
			b.Item("profile", "Profile", menu.WithURL("/settings/profile"))
			b.Item("billing", "Billing", menu.WithURL("/settings/billing"))
		}),
	)
}
