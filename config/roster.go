package config

// Team 一个小组及其成员名单，成员顺序即展示顺序
type Team struct {
	Name    string   `mapstructure:"name" json:"name"`
	Members []string `mapstructure:"members" json:"members"`
}

// Roster 全部小组名单，进程内只读配置
type Roster []Team

// Teams 按配置顺序返回小组名
func (r Roster) Teams() []string {
	names := make([]string, 0, len(r))
	for _, t := range r {
		names = append(names, t.Name)
	}
	return names
}

// Members 返回指定小组的成员名单，小组不存在时返回 nil
func (r Roster) Members(team string) []string {
	for _, t := range r {
		if t.Name == team {
			return t.Members
		}
	}
	return nil
}

// Contains 判断成员是否属于指定小组
func (r Roster) Contains(team, name string) bool {
	for _, m := range r.Members(team) {
		if m == name {
			return true
		}
	}
	return false
}

// DefaultRoster 默认名单，配置未提供 roster 时使用
func DefaultRoster() Roster {
	return Roster{
		{Name: "张庆", Members: []string{"张庆", "吴菊香", "赵辛培", "李耀泰", "李积如", "吴秋兰", "何绮君"}},
		{Name: "杨畅", Members: []string{"杨畅", "黄义贡", "蔡建宏", "王嘉欣", "邢京旭"}},
		{Name: "李静", Members: []string{"李静", "陈瑶瑶", "杨康乐", "陈海旭", "姚纯洁", "林森森"}},
		{Name: "熊丽娜", Members: []string{"熊丽娜", "阮渭琮", "罗智杰", "陈明君", "黄黎明"}},
		{Name: "樊计青", Members: []string{"樊计青", "李锦路", "刘嘉驹", "林友忠", "张磊", "郑凯峰"}},
	}
}
