package domain

import "testing"

func TestNewPlayer_Classes(t *testing.T) {
	tests := []struct {
		name   string
		class  PlayerClass
		hp     int
		focus  int
		damage int
	}{
		{"code warrior", ClassCodeWarrior, 50, 50, 20},
		{"meeting survivor", ClassMeetingSurvivor, 70, 50, 10},
		{"inbox knight", ClassInboxKnight, 50, 60, 10},
		{"wanderer", ClassWanderer, 55, 55, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.class)
			if p.MaxHP != tt.hp || p.HP != tt.hp {
				t.Errorf("HP = %d/%d, want %d", p.HP, p.MaxHP, tt.hp)
			}
			if p.Focus != tt.focus {
				t.Errorf("Focus = %d, want %d", p.Focus, tt.focus)
			}
			if p.Damage != tt.damage {
				t.Errorf("Damage = %d, want %d", p.Damage, tt.damage)
			}
			if p.Energy != 100 || p.Level != 1 {
				t.Errorf("Expected 100 energy at level 1, got %d at %d", p.Energy, p.Level)
			}
		})
	}
}

func TestPlayer_AddXP(t *testing.T) {
	p := NewPlayer(ClassWanderer)

	if p.AddXP(50) {
		t.Error("50 XP should not level up from level 1")
	}
	if p.AddXP(20) {
		t.Error("70 XP total should not level up")
	}
	if !p.AddXP(30) {
		t.Fatal("100 XP total should level up")
	}

	if p.Level != 2 {
		t.Errorf("Expected level 2, got %d", p.Level)
	}
	if p.XP != 0 {
		t.Errorf("Expected no residual XP, got %d", p.XP)
	}
	if p.MaxHP != 65 {
		t.Errorf("Level up should add 10 max HP, got %d", p.MaxHP)
	}
	if p.HP != p.MaxHP {
		t.Errorf("Level up should fully heal, got %d/%d", p.HP, p.MaxHP)
	}
}

func TestPlayer_AddXP_CarriesRemainder(t *testing.T) {
	p := NewPlayer(ClassWanderer)

	if !p.AddXP(130) {
		t.Fatal("130 XP should level up past the 100 threshold")
	}
	if p.Level != 2 {
		t.Errorf("Expected level 2, got %d", p.Level)
	}
	if p.XP != 30 {
		t.Errorf("Expected 30 XP carried over, got %d", p.XP)
	}
}

func TestPlayer_UseEnergy(t *testing.T) {
	p := NewPlayer(ClassWanderer)
	p.Energy = 4

	if p.UseEnergy(5) {
		t.Error("Expected energy spend to fail at 4/5")
	}
	if p.Energy != 4 {
		t.Errorf("Failed spend must not drain energy, got %d", p.Energy)
	}

	if !p.UseEnergy(4) {
		t.Error("Expected exact spend to succeed")
	}
	if p.Energy != 0 {
		t.Errorf("Expected 0 energy, got %d", p.Energy)
	}
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := NewPlayer(ClassWanderer)
	p.Defending = true

	alive := p.TakeDamage(0)
	if !alive {
		t.Fatal("Player should survive minimal damage")
	}
	if p.HP != p.MaxHP-1 {
		t.Errorf("Zero damage clamps to 1, got HP %d", p.HP)
	}
	if p.Defending {
		t.Error("Taking damage must clear the defending stance")
	}

	if p.TakeDamage(1000) {
		t.Error("Player should die from massive damage")
	}
}

func TestPlayer_Heal_CapsAtMax(t *testing.T) {
	p := NewPlayer(ClassWanderer)
	p.HP = 10

	p.Heal(1000)
	if p.HP != p.MaxHP {
		t.Errorf("Heal should cap at max HP, got %d/%d", p.HP, p.MaxHP)
	}
}

func TestPlayer_PickUpItem_CapacityLimit(t *testing.T) {
	p := NewPlayer(ClassWanderer)

	for i := 0; i < InventoryCapacity; i++ {
		if !p.PickUpItem(Item{Name: "Флакон Энергии"}) {
			t.Fatalf("Pickup %d should fit in inventory", i)
		}
	}
	if p.PickUpItem(Item{Name: "Флакон Энергии"}) {
		t.Error("Pickup beyond capacity should fail")
	}
	if len(p.Inventory) != InventoryCapacity {
		t.Errorf("Expected full inventory, got %d", len(p.Inventory))
	}
}
